package apperror

// AppError is a custom error type that includes an HTTP status code and an optional internal error code.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404, 409)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detailer is implemented by errors that carry a structured payload for the caller,
// such as the list of days a booking would overallocate.
type Detailer interface {
	ErrorDetails() any
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithCause re-labels a lower-level error with the status and message of a sentinel
// while keeping both in the chain, so errors.Is matches either.
func WithCause(sentinel *AppError, cause error) *AppError {
	return &AppError{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     &chain{sentinel: sentinel, cause: cause},
	}
}

type chain struct {
	sentinel *AppError
	cause    error
}

func (c *chain) Error() string   { return c.cause.Error() }
func (c *chain) Unwrap() []error { return []error{c.sentinel, c.cause} }
