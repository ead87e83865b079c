package entity

import "time"

// DealTypeMarketSell is the transaction kind this job both counts and writes.
const DealTypeMarketSell = "market.sell"

// Deal is a money-log record of a market sale. Records the seeder created
// carry SeededBy; organic deals leave it empty.
type Deal struct {
	ID     string
	User   string
	Type   string
	Date   time.Time
	Change float64 // Credits value of the transaction, Amount * Price
	Market DealMarket

	SeededBy string
}

// DealMarket is the market payload nested inside a deal record.
type DealMarket struct {
	ResourceType string
	Amount       int64
	Price        float64
}
