package wirecodec

import (
	"errors"
	"strconv"
)

var (
	ErrMissingField         = errors.New("wirecodec: missing required field")
	ErrCredentialIDMismatch = errors.New("wirecodec: rawId does not match id")
)

// FieldError locates a decode failure within a wire object. Field is a
// dotted path from the record root, with list indexes where applicable,
// e.g. "response.clientDataJSON" or "allowCredentials[1].id".
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "wirecodec: field " + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnknownEnumError reports a wire tag outside one of the closed
// enumeration sets. Raw holds the offending tag as it appeared on the wire.
type UnknownEnumError struct {
	Field string
	Raw   string
}

func (e *UnknownEnumError) Error() string {
	return "wirecodec: field " + e.Field + ": unknown enum value " + strconv.Quote(e.Raw)
}
