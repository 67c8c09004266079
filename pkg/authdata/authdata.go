// Package authdata parses the authenticator-data byte layout carried in
// assertion responses (and inside attestation objects).
// https://www.w3.org/TR/webauthn-3/#sctn-authenticator-data
package authdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/ldclabs/cose/key"
)

var ErrTruncated = errors.New("authdata: truncated authenticator data")

type Flag byte

const (
	FlagUserPresent Flag = 1 << iota
	_
	FlagUserVerified
	_
	_
	_
	FlagAttestedCredentialDataIncluded
	FlagExtensionDataIncluded
)

func (f Flag) UserPresent() bool {
	return f&FlagUserPresent != 0
}
func (f Flag) UserVerified() bool {
	return f&FlagUserVerified != 0
}
func (f Flag) AttestedCredentialDataIncluded() bool {
	return f&FlagAttestedCredentialDataIncluded != 0
}
func (f Flag) ExtensionDataIncluded() bool {
	return f&FlagExtensionDataIncluded != 0
}

// AttestedCredentialData is present when the AT flag is set, i.e. in
// registration ceremonies.
type AttestedCredentialData struct {
	AAGUID              uuid.UUID
	CredentialID        []byte
	CredentialPublicKey key.Key
}

// AuthenticatorData is the parsed fixed layout: a 32-byte RP ID hash, one
// flag byte, a big-endian 32-bit signature counter, then optional attested
// credential data and optional CBOR extension data.
type AuthenticatorData struct {
	RPIDHash               []byte
	Flags                  Flag
	SignCount              uint32
	AttestedCredentialData *AttestedCredentialData
	Extensions             []byte
}

// Parse decodes authenticator data. The returned structure aliases the
// input; callers that keep it must not mutate data.
func Parse(data []byte) (*AuthenticatorData, error) {
	if len(data) < 37 {
		return nil, ErrTruncated
	}

	d := &AuthenticatorData{
		RPIDHash:  data[:32],
		Flags:     Flag(data[32]),
		SignCount: binary.BigEndian.Uint32(data[33:37]),
	}
	offset := 37

	if d.Flags.AttestedCredentialDataIncluded() {
		// AAGUID plus the credential ID length prefix.
		if len(data) < offset+18 {
			return nil, ErrTruncated
		}
		credData := &AttestedCredentialData{
			AAGUID: uuid.UUID(data[offset : offset+16]),
		}
		offset += 16

		length := int(binary.BigEndian.Uint16(data[offset : offset+2]))
		offset += 2
		if len(data) < offset+length {
			return nil, ErrTruncated
		}
		credData.CredentialID = data[offset : offset+length]
		offset += length

		dec := cbor.NewDecoder(bytes.NewReader(data[offset:]))
		if err := dec.Decode(&credData.CredentialPublicKey); err != nil {
			return nil, fmt.Errorf("authdata: decoding credential public key: %w", err)
		}
		offset += dec.NumBytesRead()

		d.AttestedCredentialData = credData
	}

	if d.Flags.ExtensionDataIncluded() {
		d.Extensions = data[offset:]
	}

	return d, nil
}
