package errors

// Kind classifies a domain error so transport layers can map it to a status
// code without inspecting message text.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindForbidden      Kind = "forbidden"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindGateway        Kind = "payment_gateway"
	KindVerification   Kind = "payment_verification"
	KindUnavailable    Kind = "unavailable"
)

// Error is a domain error carrying its kind and a user-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports kind equality, so errors.Is(err, ErrNotFound) matches any
// not-found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New builds a domain error with explicit kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func Gateway(message string) *Error      { return New(KindGateway, message) }
func Verification(message string) *Error { return New(KindVerification, message) }

var (
	ErrValidation          = New(KindValidation, "validation failed")
	ErrNotFound            = New(KindNotFound, "not found")
	ErrAlreadyExists       = New(KindConflict, "already exists")
	ErrInvalidCredentials  = New(KindAuthentication, "invalid credentials")
	ErrForbidden           = New(KindForbidden, "access denied")
	ErrPaymentGateway      = New(KindGateway, "payment gateway error")
	ErrPaymentVerification = New(KindVerification, "payment verification failed")
	ErrUnavailable         = New(KindUnavailable, "database unavailable")
)
