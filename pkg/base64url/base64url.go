// Package base64url converts between raw byte sequences and the two base64
// text forms used by WebAuthn: padded standard base64 and the unpadded
// URL-safe form carried on the wire.
// https://www.w3.org/TR/webauthn-3/#sctn-dependencies
package base64url

import (
	"encoding/base64"
	"strings"

	"github.com/samber/mo"
)

type (
	// StandardBase64 is text in the standard alphabet (A-Z a-z 0-9 + /),
	// padded with '=' to a multiple of four characters.
	StandardBase64 string
	// URLBase64 is text in the URL-safe alphabet (A-Z a-z 0-9 - _) with no
	// padding characters. This is the only form that appears on the wire.
	URLBase64 string
)

// EncodeStandard encodes b as padded standard base64. It is total over any
// byte sequence, including the empty one.
func EncodeStandard(b []byte) StandardBase64 {
	return StandardBase64(base64.StdEncoding.EncodeToString(b))
}

// Encode encodes b directly into the wire form,
// equivalent to EncodeStandard(b).URLBase64().
func Encode(b []byte) URLBase64 {
	return EncodeStandard(b).URLBase64()
}

// URLBase64 converts the standard form into the URL-safe form by alphabet
// substitution and padding strip. The underlying bytes are not re-encoded.
func (s StandardBase64) URLBase64() URLBase64 {
	t := strings.TrimRight(string(s), "=")
	t = strings.ReplaceAll(t, "+", "-")
	t = strings.ReplaceAll(t, "/", "_")

	return URLBase64(t)
}

// StandardBase64 converts the URL-safe form back into the standard form,
// re-adding padding to reach a multiple of four characters.
func (u URLBase64) StandardBase64() StandardBase64 {
	t := strings.ReplaceAll(string(u), "-", "+")
	t = strings.ReplaceAll(t, "_", "/")
	t += strings.Repeat("=", (4-len(t)%4)%4)

	return StandardBase64(t)
}

// Decode decodes the padded standard form. Characters outside the standard
// alphabet, or padding that does not bring the length to a multiple of four,
// yield an *InvalidEncodingError.
func (s StandardBase64) Decode() ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(string(s))
	if err != nil {
		return nil, &InvalidEncodingError{Encoding: EncodingStandard, cause: err}
	}

	return b, nil
}

// Decode decodes the unpadded URL-safe form. Characters outside the URL-safe
// alphabet, including any '=' padding, yield an *InvalidEncodingError.
func (u URLBase64) Decode() ([]byte, error) {
	b, err := base64.RawURLEncoding.Strict().DecodeString(string(u))
	if err != nil {
		return nil, &InvalidEncodingError{Encoding: EncodingURL, cause: err}
	}

	return b, nil
}

// EncodeOption maps an optional byte sequence to an optional wire token.
// Absent stays absent; a present empty sequence encodes to a present empty
// token, keeping the two states distinct.
func EncodeOption(b mo.Option[[]byte]) mo.Option[URLBase64] {
	raw, ok := b.Get()
	if !ok {
		return mo.None[URLBase64]()
	}

	return mo.Some(Encode(raw))
}

// DecodeOption maps an optional wire token to an optional byte sequence.
// An absent token decodes to None without error; a present malformed token
// is always an error, never a silent None.
func DecodeOption(t mo.Option[URLBase64]) (mo.Option[[]byte], error) {
	tok, ok := t.Get()
	if !ok {
		return mo.None[[]byte](), nil
	}

	b, err := tok.Decode()
	if err != nil {
		return mo.None[[]byte](), err
	}

	return mo.Some(b), nil
}
