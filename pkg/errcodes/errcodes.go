package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	NotFound            failure.ErrorCode = "NotFound"
	ValidationError     failure.ErrorCode = "ValidationError"

	// Seeder module.
	StorageNotReady  failure.ErrorCode = "StorageNotReady"  // required tables are still missing
	DealInsertFailed failure.ErrorCode = "DealInsertFailed" // write to users_money rejected
	OrderQueryFailed failure.ErrorCode = "OrderQueryFailed" // read from market_orders rejected
	DealQueryFailed  failure.ErrorCode = "DealQueryFailed"  // read from users_money rejected
)
