package base64url

import "errors"

// ErrInvalidEncoding matches any *InvalidEncodingError via errors.Is.
var ErrInvalidEncoding = errors.New("base64url: invalid encoding")

const (
	EncodingStandard = "standard"
	EncodingURL      = "url"
)

// InvalidEncodingError reports text that is not valid base64 in the
// applicable alphabet, or whose padding is structurally invalid.
type InvalidEncodingError struct {
	Encoding string
	cause    error
}

func (e *InvalidEncodingError) Error() string {
	return "base64url: invalid " + e.Encoding + " encoding: " + e.cause.Error()
}

func (e *InvalidEncodingError) Unwrap() error {
	return e.cause
}

func (e *InvalidEncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}
