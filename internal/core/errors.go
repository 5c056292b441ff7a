package core

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorKind classifies generation failures.
type ErrorKind string

const (
	KindUnsupportedBuildType ErrorKind = "unsupported build type"
	KindUnresolvedDependency ErrorKind = "unresolved dependency"
	KindDistributionLookup   ErrorKind = "distribution lookup"
	KindUnsupportedHost      ErrorKind = "unsupported host"
	KindMalformedURL         ErrorKind = "malformed url"
	KindMissingField         ErrorKind = "missing field"
	KindInvalidVersion       ErrorKind = "invalid version"
	KindExternalTool         ErrorKind = "external tool"
)

// Error attaches a kind to an errbuilder error. Error() and the code are
// those of the wrapped error.
type Error struct {
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// NewError builds a kinded error with the given code and message.
func NewError(kind ErrorKind, code errbuilder.ErrCode, msg string) error {
	return &Error{
		Kind: kind,
		err:  errbuilder.New().WithCode(code).WithMsg(msg),
	}
}

// WrapError is NewError with a cause.
func WrapError(kind ErrorKind, code errbuilder.ErrCode, msg string, cause error) error {
	return &Error{
		Kind: kind,
		err:  errbuilder.New().WithCode(code).WithMsg(msg).WithCause(cause),
	}
}

// IsKind reports whether err or any error it wraps is a kinded error of
// the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		var kinded *Error
		if !errors.As(err, &kinded) {
			return false
		}
		if kinded.Kind == kind {
			return true
		}
		err = kinded.err
	}
	return false
}

// CodeOf returns the errbuilder code of the first errbuilder error in the
// chain of err.
func CodeOf(err error) errbuilder.ErrCode {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return errbuilder.CodeOf(builder)
	}
	return errbuilder.CodeOf(err)
}
