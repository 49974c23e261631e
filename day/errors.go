package day

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// Kind is the closed set of failure categories for parsing and solving.
type Kind int

const (
	Unimplemented Kind = iota
	IOFailure
	IntegerParseFailure
	FloatParseFailure
	WrappedExternal
	Generic
)

func (k Kind) String() string {
	switch k {
	case Unimplemented:
		return "Unimplemented"
	case IOFailure:
		return "IOFailure"
	case IntegerParseFailure:
		return "IntegerParseFailure"
	case FloatParseFailure:
		return "FloatParseFailure"
	case WrappedExternal:
		return "WrappedExternal"
	case Generic:
		return "Generic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a day failure. Msg is only set for Generic; Err is only set for
// the kinds that wrap an underlying failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// ErrUnimplemented marks a part that has not been written yet.
var ErrUnimplemented = &Error{Kind: Unimplemented}

// Error renders Generic failures as their message and everything else as
// the kind followed by the wrapped payload and its type.
func (e *Error) Error() string {
	switch e.Kind {
	case Generic:
		return e.Msg
	case Unimplemented:
		return e.Kind.String()
	}
	if e.Err == nil {
		return e.Kind.String() + "(<nil>)"
	}
	return fmt.Sprintf("%s(%T: %v)", e.Kind, e.Err, e.Err)
}

// Unwrap exposes the cause. Unimplemented and Generic have none.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case Unimplemented, Generic:
		return nil
	}
	return e.Err
}

// Is reports a match against a bare-kind target such as ErrUnimplemented.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// IO wraps an I/O failure.
func IO(err error) *Error {
	return &Error{Kind: IOFailure, Err: err}
}

// ParseInt wraps an integer conversion failure.
func ParseInt(err error) *Error {
	return &Error{Kind: IntegerParseFailure, Err: err}
}

// ParseFloat wraps a float conversion failure.
func ParseFloat(err error) *Error {
	return &Error{Kind: FloatParseFailure, Err: err}
}

// Wrap wraps an arbitrary external failure.
func Wrap(err error) *Error {
	return &Error{Kind: WrappedExternal, Err: err}
}

// New returns a Generic failure carrying msg.
func New[S ~string](msg S) *Error {
	return &Error{Kind: Generic, Msg: string(msg)}
}

// Errorf returns a Generic failure with a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{Kind: Generic, Msg: fmt.Sprintf(format, args...)}
}

// Ensure returns a Generic failure when cond is false, and nil otherwise.
func Ensure(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return Errorf(format, args...)
}

// From converts err into the matching *Error, keeping the original as the
// cause. An err whose chain already holds a *Error is returned unchanged,
// wrappers included, so errors.As still finds the kind.
func From(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if numErr.Func == "ParseFloat" {
			return ParseFloat(err)
		}
		return ParseInt(err)
	}
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)
	switch {
	case errors.As(err, &pathErr), errors.As(err, &linkErr), errors.As(err, &syscallErr),
		errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.ErrClosedPipe):
		return IO(err)
	}
	return Wrap(err)
}
