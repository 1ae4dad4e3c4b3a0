package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is the code of a response that carries no error.
	SuccessABCICode uint32 = 0

	// Errors that are not rooted in a registered *Error are reported
	// under this code with a generic message, so that no implementation
	// detail leaks to the client.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log message that should be sent back to the
// client for the given error.
//
// Registered errors expose their message. Any other error is reported as
// internal and, unless debug is set, its message is replaced.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	switch {
	case debug:
		// Full formatting may include the stack trace.
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return internalABCICode, internalABCILog
	default:
		return code, err.Error()
	}
}

// ABCIError returns an error that reports the given ABCI code. It is used by
// clients to map a response back to the registered root error, so that Is
// works on both sides of the wire.
func ABCIError(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	if root, ok := usedCodes[code]; ok {
		return Wrap(root, log)
	}
	return Wrap(&Error{code: code, desc: "unknown error"}, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the chain that declares
// one.
func abciCode(err error) uint32 {
	for !isNilErr(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}

// Redact replaces any error that is not rooted in a registered error, and any
// recovered panic, with a generic internal error. No-op in debug mode.
func Redact(err error, debug bool) error {
	if debug || isNilErr(err) {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
