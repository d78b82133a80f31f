package querystring

import (
	"errors"
	"fmt"
	"github.com/go-andiamo/querystring/framing"
)

// ErrInvalidArgument is the cause of every ArgumentError
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is returned when an operation is given an argument it cannot accept (e.g. an empty name)
type ArgumentError interface {
	error
	// Operation is the name of the operation that rejected the argument
	Operation() string
	// Argument is the name of the rejected argument
	Argument() string
	Cause() error
	Unwrap() error
	framing.Framed
}

const (
	reasonEmpty      = "must not be empty"
	reasonPositional = "not supported for positional path values"
	reasonFixed      = "not supported, path values are fixed"
	reasonNotString  = "must be a string"
)

type argumentError struct {
	op     string
	arg    string
	reason string
	frame  *framing.Frame
}

var _ ArgumentError = (*argumentError)(nil)

//go:noinline
func newArgumentError(op string, arg string, reason string) error {
	return &argumentError{
		op:     op,
		arg:    arg,
		reason: reason,
		frame:  framing.NewFrame(1),
	}
}

func (e *argumentError) Error() string {
	return fmt.Sprintf("querystring: %s: %s %q %s", e.op, ErrInvalidArgument, e.arg, e.reason)
}

func (e *argumentError) Operation() string {
	return e.op
}

func (e *argumentError) Argument() string {
	return e.arg
}

func (e *argumentError) Cause() error {
	return ErrInvalidArgument
}

func (e *argumentError) Unwrap() error {
	return ErrInvalidArgument
}

func (e *argumentError) Frame() *framing.Frame {
	return e.frame
}
