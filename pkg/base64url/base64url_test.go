package base64url

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	// One case per padding class, plus empty and single-byte.
	for _, b := range [][]byte{
		{},
		{0x42},
		{0x01, 0x02},
		{0x01, 0x02, 0x03},
		{0xde, 0xad, 0xbe, 0xef},
		[]byte("the quick brown fox"),
	} {
		std := EncodeStandard(b)
		assert.Zero(t, len(std)%4)

		url := std.URLBase64()
		assert.NotContains(t, string(url), "=")
		assert.NotContains(t, string(url), "+")
		assert.NotContains(t, string(url), "/")

		assert.Equal(t, std, url.StandardBase64())

		decoded, err := url.Decode()
		require.NoError(t, err)
		assert.Equal(t, b, decoded)

		decoded, err = std.Decode()
		require.NoError(t, err)
		assert.Equal(t, b, decoded)
	}
}

func TestKnownVector(t *testing.T) {
	b := []byte{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 0}

	std := EncodeStandard(b)
	assert.Equal(t, StandardBase64("AQABAAEBAAEAAQEAAAABAA=="), std)
	assert.Equal(t, URLBase64("AQABAAEBAAEAAQEAAAABAA"), std.URLBase64())
}

func TestPaddingClasses(t *testing.T) {
	// 16 bytes: no padding at all, 15 bytes: one '=', 14 bytes: two '='.
	assert.NotContains(t, string(EncodeStandard(make([]byte, 16))), "=")
	assert.Regexp(t, "[^=]=$", string(EncodeStandard(make([]byte, 15))))
	assert.Regexp(t, "==$", string(EncodeStandard(make([]byte, 14))))
}

func TestDecodeInvalid(t *testing.T) {
	for name, tok := range map[string]URLBase64{
		"standard alphabet plus":  "AQ+B",
		"standard alphabet slash": "AQ/B",
		"padding present":         "AQAB==",
		"out of alphabet":         "AQ$B",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tok.Decode()
			require.ErrorIs(t, err, ErrInvalidEncoding)

			var encErr *InvalidEncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, EncodingURL, encErr.Encoding)
		})
	}

	// Padding that does not reach a multiple of four.
	_, err := StandardBase64("AQAB=").Decode()
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = StandardBase64("AQ-B").Decode()
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestOptionMapping(t *testing.T) {
	assert.True(t, EncodeOption(mo.None[[]byte]()).IsAbsent())

	// Present-but-empty stays present.
	tok, ok := EncodeOption(mo.Some([]byte{})).Get()
	require.True(t, ok)
	assert.Equal(t, URLBase64(""), tok)

	b, err := DecodeOption(mo.None[URLBase64]())
	require.NoError(t, err)
	assert.True(t, b.IsAbsent())

	b, err = DecodeOption(mo.Some(URLBase64("AQAB")))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 1}, b.MustGet())

	// A present malformed token is an error, never a silent None.
	_, err = DecodeOption(mo.Some(URLBase64("A+")))
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
