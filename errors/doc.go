/*
Package errors implements the error model shared by every extension.

Each failure is rooted in one of the registered *Error instances. Root errors
carry an ABCI code that is returned to the client, so a client can tell an
ownership problem from a missing account without parsing the message.

Reuse the root errors declared here where possible. An extension that needs
its own category registers it once, during program startup:

	var ErrOwnershipMismatch = errors.Register(1103, "ownership mismatch")

Wrap a root error at the point of failure to attach context and a stack
trace:

	return errors.Wrapf(ErrOwnershipMismatch, "destination %s", addr)

Use %+v when formatting to print the stack trace recorded on the first wrap.
*/
package errors
