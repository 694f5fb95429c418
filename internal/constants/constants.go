package constants

const (
	// SessionCookieName is the cookie carrying the login session
	SessionCookieName = "technotes_session"

	// ContextKeyUserID is the session and gin context key for the logged-in user
	ContextKeyUserID = "user_id"

	// ContextKeyRoles is the session key holding the logged-in user's roles
	ContextKeyRoles = "roles"

	// HeaderRequestID carries the per-request correlation id
	HeaderRequestID = "X-Request-ID"
)
