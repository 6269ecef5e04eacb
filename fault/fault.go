// Package fault defines the domain error representation shared by the
// gallery model and the orchestration services.
package fault

// Error is a domain failure carrying a stable machine-readable code, a
// human-readable message and an optional underlying cause. Identity is
// code-based: a copy produced by Because still matches its sentinel
// under errors.Is.
type Error struct {
	code  string
	msg   string
	cause error
}

// New constructs a sentinel error with a unique code.
func New(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Code returns the stable identifier of the failure kind.
func (e *Error) Code() string {
	return e.code
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors by code so wrapped copies keep their sentinel identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// Because returns a copy of e that records cause. The copy still
// satisfies errors.Is against the original sentinel.
func (e *Error) Because(cause error) *Error {
	return &Error{code: e.code, msg: e.msg, cause: cause}
}
