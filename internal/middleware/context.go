package middleware

// Context keys used to stash request metadata.
const (
	ContextKeyRequestID = "request_id"
	ContextKeyFunction  = "webhook_function"
)
