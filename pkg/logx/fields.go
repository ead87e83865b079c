package logx

const (
	FieldAppName    = "app-name"
	FieldAppVersion = "app-version"
	FieldDurationMs = "duration-ms"
	FieldError      = "error"
	FieldTraceID    = "trace-id"

	FieldAttempt      = "attempt"
	FieldInserted     = "inserted"
	FieldResourceType = "resource-type"
)
