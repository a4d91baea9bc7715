package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldGame       = "game"
	FieldOutcome    = "outcome"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldUserID     = "user_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
