package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field wraps err with the name of the message or model attribute that it
// describes. It returns nil if err is nil, so validation code can chain calls
// without checking every result.
//
// Use Go naming for the field name, for example OfferedHolding. Nested fields
// use dot notation, for example Metadata.Schema.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField combines errorsOrNil with a field error created for fieldErrOrNil.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.field
}

type fielder interface {
	Field() string
}

// FieldErrors returns all errors found in err that were created for the
// given field name.
func FieldErrors(err error, fieldName string) []error {
	var res []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(res, err)
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				res = append(res, FieldErrors(e, fieldName)...)
			}
			return res
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return res
}

// Append clubs together all non nil errors. It returns nil if all errors are
// nil and the single error if only one is given.
//
// The returned group reports the ABCI code of its first member and matches Is
// for any member.
func Append(errs ...error) error {
	var group multiError
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiError); ok {
			group = append(group, m...)
		} else {
			group = append(group, e)
		}
	}
	switch len(group) {
	case 0:
		return nil
	case 1:
		return group[0]
	default:
		return group
	}
}

type multiError []error

func (m multiError) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t* %s", len(m), strings.Join(msgs, "\n\t* "))
}

func (m multiError) Unpack() []error {
	return m
}

func (m multiError) ABCICode() uint32 {
	return abciCode(m[0])
}
