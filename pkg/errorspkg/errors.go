// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// Kind classifies an error by the way callers are expected to react to it.
type Kind int

// Error kinds known to the application.
const (
	Internal Kind = iota
	NotFound
	OperationNotAllowed
	InvalidRequest
	RateUnavailable
)

var kindNames = map[Kind]string{
	Internal:            "Internal",
	NotFound:            "NotFound",
	OperationNotAllowed: "OperationNotAllowed",
	InvalidRequest:      "InvalidRequest",
	RateUnavailable:     "RateUnavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[Internal]
}

// Error is an application error tagged with its Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New returns a tagged error with the given message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns a tagged error with the given message that unwraps to err.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first tagged error in err's chain.
//
// Untagged errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Internal
}

// ErrInternal indicates internal server error.
var ErrInternal = New(Internal, "internal")
