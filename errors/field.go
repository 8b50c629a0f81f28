package errors

import (
	"fmt"
	"strings"

	pkgerr "github.com/pkg/errors"
)

// Field returns an error instance that wraps the original error with
// additional information. It returns `nil` if provided error is `nil`.
// Use this function to create an error instance describing a field/attribute
// error.
//
// Use Go naming for the field name. For example, Treasury or ProtocolFeeBps.
// When the error is for a nested field, use dot notation to construct the
// path, for example Royalty.Splits. When the path includes an iterable, use
// the element index starting with 0 as the name, for example Splits.2.Shares.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}

	if stackTrace(err) == nil {
		err = pkgerr.WithStack(err)
	}

	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}

	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// AppendField is a shortcut function to club together error(s) with a given
// field error.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

// Append combines any two errors into a single one. Any of the given errors
// can be nil.
func Append(a, b error) error {
	switch {
	case isNilErr(a):
		return b
	case isNilErr(b):
		return a
	}

	res := make(errorsList, 0, 2)
	if es, ok := a.(errorsList); ok {
		res = append(res, es...)
	} else {
		res = append(res, a)
	}
	if es, ok := b.(errorsList); ok {
		res = append(res, es...)
	} else {
		res = append(res, b)
	}
	return res
}

// errorsList represents a flat collection of errors clubbed together.
type errorsList []error

func (es errorsList) Error() string {
	switch len(es) {
	case 0:
		return "<nil>"
	case 1:
		return es[0].Error()
	}
	descs := make([]string, len(es))
	for i, e := range es {
		descs[i] = e.Error()
	}
	return strings.Join(descs, "; ")
}

// Unpack implements the unpacker interface.
func (es errorsList) Unpack() []error {
	return es
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field implements fielder interface.
func (err *fieldError) Field() string {
	return err.field
}

// FieldErrors returns the list of all errors that are created for the given
// field name.
func FieldErrors(err error, fieldName string) []error {
	if isNilErr(err) {
		return nil
	}

	var res []error
	for {
		if err == nil {
			return res
		}

		if f, ok := err.(fielder); ok {
			if f.Field() == fieldName {
				return append(res, err)
			}
		}

		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				res = append(res, FieldErrors(e, fieldName)...)
			}
			// Unpacker is a superset of causer. If Unpack() can be
			// called then we already work on all children of this
			// error.
			return res
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return res
		}
	}
}

type fielder interface {
	// Field returns the field name that this error is created for.
	Field() string
}

// unpacker is implemented by errors that club together many errors.
type unpacker interface {
	Unpack() []error
}
