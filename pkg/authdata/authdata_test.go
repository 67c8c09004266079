package authdata

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ES256 EC2 COSE key: {1: 2, 3: -7, -1: 1, -2: x, -3: y}.
func coseKeyDump() []byte {
	dump := []byte{0xa5, 0x01, 0x02, 0x03, 0x26, 0x20, 0x01, 0x21, 0x58, 0x20}
	dump = append(dump, bytes.Repeat([]byte{0x11}, 32)...)
	dump = append(dump, 0x22, 0x58, 0x20)
	dump = append(dump, bytes.Repeat([]byte{0x22}, 32)...)

	return dump
}

func TestParseAssertionData(t *testing.T) {
	data := make([]byte, 0, 37)
	data = append(data, bytes.Repeat([]byte{0xaa}, 32)...)
	data = append(data, 0x05) // UP | UV
	data = binary.BigEndian.AppendUint32(data, 7)

	d, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 32), d.RPIDHash)
	assert.True(t, d.Flags.UserPresent())
	assert.True(t, d.Flags.UserVerified())
	assert.False(t, d.Flags.AttestedCredentialDataIncluded())
	assert.False(t, d.Flags.ExtensionDataIncluded())
	assert.Equal(t, uint32(7), d.SignCount)
	assert.Nil(t, d.AttestedCredentialData)
	assert.Nil(t, d.Extensions)
}

func TestParseAttestedCredentialData(t *testing.T) {
	aaguid := uuid.MustParse("6ebb46cc-e241-80bf-ae9e-96cb641a3601")
	credID := []byte{0xde, 0xad, 0xbe, 0xef}

	data := make([]byte, 0, 128)
	data = append(data, bytes.Repeat([]byte{0xaa}, 32)...)
	data = append(data, 0x45) // UP | UV | AT
	data = binary.BigEndian.AppendUint32(data, 1)
	data = append(data, aaguid[:]...)
	data = binary.BigEndian.AppendUint16(data, uint16(len(credID)))
	data = append(data, credID...)
	data = append(data, coseKeyDump()...)

	d, err := Parse(data)
	require.NoError(t, err)

	require.NotNil(t, d.AttestedCredentialData)
	assert.Equal(t, aaguid, d.AttestedCredentialData.AAGUID)
	assert.Equal(t, credID, d.AttestedCredentialData.CredentialID)
	assert.Len(t, d.AttestedCredentialData.CredentialPublicKey, 5)
	assert.Nil(t, d.Extensions)
}

func TestParseExtensionData(t *testing.T) {
	extensions := []byte{0xa1, 0x6b, 0x68, 0x6d, 0x61, 0x63, 0x2d, 0x73, 0x65, 0x63, 0x72, 0x65, 0x74, 0xf5}

	data := make([]byte, 0, 64)
	data = append(data, bytes.Repeat([]byte{0xbb}, 32)...)
	data = append(data, 0x81) // UP | ED
	data = binary.BigEndian.AppendUint32(data, 2)
	data = append(data, extensions...)

	d, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, extensions, d.Extensions)
}

func TestParseTruncated(t *testing.T) {
	_, err := Parse(bytes.Repeat([]byte{0x00}, 36))
	require.ErrorIs(t, err, ErrTruncated)

	// AT flag set but no attested credential data following.
	data := make([]byte, 0, 37)
	data = append(data, bytes.Repeat([]byte{0xaa}, 32)...)
	data = append(data, 0x45)
	data = binary.BigEndian.AppendUint32(data, 1)

	_, err = Parse(data)
	require.ErrorIs(t, err, ErrTruncated)

	// Credential ID length pointing past the end.
	data = append(data, bytes.Repeat([]byte{0x00}, 16)...)
	data = binary.BigEndian.AppendUint16(data, 64)

	_, err = Parse(data)
	require.ErrorIs(t, err, ErrTruncated)
}
