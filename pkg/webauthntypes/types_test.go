package webauthntypes

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOSEAlgorithmHash(t *testing.T) {
	for alg, want := range map[COSEAlgorithm]crypto.Hash{
		COSEAlgorithmES256: crypto.SHA256,
		COSEAlgorithmES384: crypto.SHA384,
		COSEAlgorithmES512: crypto.SHA512,
	} {
		h, ok := alg.Hash()
		require.True(t, ok)
		assert.Equal(t, want, h)
		assert.True(t, h.Available())
	}

	_, ok := COSEAlgorithm(-999).Hash()
	assert.False(t, ok)
}

func TestCOSEAlgorithmValues(t *testing.T) {
	assert.EqualValues(t, -7, COSEAlgorithmES256)
	assert.EqualValues(t, -35, COSEAlgorithmES384)
	assert.EqualValues(t, -36, COSEAlgorithmES512)

	assert.Equal(t, "ES256", COSEAlgorithmES256.String())
	assert.Equal(t, "COSEAlgorithm(-999)", COSEAlgorithm(-999).String())
}

func TestSupportedAlgorithmsIsFresh(t *testing.T) {
	first := SupportedAlgorithms()
	first[0] = COSEAlgorithm(0)

	assert.Equal(t,
		[]COSEAlgorithm{COSEAlgorithmES256, COSEAlgorithmES384, COSEAlgorithmES512},
		SupportedAlgorithms(),
	)
}

func TestDefaultCredentialParameters(t *testing.T) {
	params := DefaultCredentialParameters()
	require.Len(t, params, 3)

	// Most-to-least preferred.
	assert.Equal(t, COSEAlgorithmES256, params[0].Algorithm)
	assert.Equal(t, COSEAlgorithmES384, params[1].Algorithm)
	assert.Equal(t, COSEAlgorithmES512, params[2].Algorithm)
	for _, p := range params {
		assert.Equal(t, PublicKeyCredentialTypePublicKey, p.Type)
	}
}

func TestClosedSets(t *testing.T) {
	for _, tr := range []AuthenticatorTransport{"usb", "nfc", "ble", "hybrid", "internal"} {
		assert.True(t, tr.Registered())
	}
	assert.False(t, AuthenticatorTransport("smart-card").Registered())

	assert.True(t, UserVerificationPreferred.Registered())
	assert.False(t, UserVerificationRequirement("maybe").Registered())

	assert.True(t, AttestationPreferenceNone.Registered())
	assert.False(t, AttestationPreference("direct").Registered())

	assert.True(t, PublicKeyCredentialTypePublicKey.Registered())
	assert.False(t, PublicKeyCredentialType("password").Registered())
}
