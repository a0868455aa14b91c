package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

// Error is a client-safe error: its message may be shown to API consumers.
// Anything else that reaches the presenters is logged but not exposed.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(message string) error {
	return &Error{Message: message}
}

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedBodyRequest    = "failed to parse body request"

	ErrParseUUID      = NewError("failed to parse UUID")
	ErrUserNotAllowed = NewError("user not allowed")
	ErrTokenNotFound  = NewError("failed to token not found")
	ErrTokenExpired   = NewError("token expired")
	ErrTokenInvalid   = NewError("token invalid")
)
