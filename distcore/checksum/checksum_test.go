//go:build unit

package checksum_test

import (
	"crypto/md5"  //nolint:gosec // fixture generation only
	"crypto/sha1" //nolint:gosec // fixture generation only
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/packwire/lib-distcore/distcore/checksum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHexDigests(t *testing.T) {
	t.Parallel()

	payload := []byte("packwire release artifact")

	md5Sum := md5.Sum(payload)       //nolint:gosec // fixture generation only
	sha1Sum := sha1.Sum(payload)     //nolint:gosec // fixture generation only
	sha224Sum := sha256.Sum224(payload)
	sha256Sum := sha256.Sum256(payload)
	sha384Sum := sha512.Sum384(payload)
	sha512Sum := sha512.Sum512(payload)

	tests := []struct {
		name      string
		raw       string
		algorithm checksum.Algorithm
	}{
		{name: "md5_32_hex", raw: hex.EncodeToString(md5Sum[:]), algorithm: checksum.AlgorithmMD5},
		{name: "sha1_40_hex", raw: hex.EncodeToString(sha1Sum[:]), algorithm: checksum.AlgorithmSHA1},
		{name: "sha224_56_hex", raw: hex.EncodeToString(sha224Sum[:]), algorithm: checksum.AlgorithmSHA224},
		{name: "sha256_64_hex", raw: hex.EncodeToString(sha256Sum[:]), algorithm: checksum.AlgorithmSHA256},
		{name: "sha384_96_hex", raw: hex.EncodeToString(sha384Sum[:]), algorithm: checksum.AlgorithmSHA384},
		{name: "sha512_128_hex", raw: hex.EncodeToString(sha512Sum[:]), algorithm: checksum.AlgorithmSHA512},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fingerprint := checksum.Classify(tc.raw)
			assert.Equal(t, checksum.EncodingHex, fingerprint.Encoding)
			assert.Equal(t, tc.algorithm, fingerprint.Algorithm)
		})
	}
}

func TestClassifyBase64Digests(t *testing.T) {
	t.Parallel()

	payload := []byte("packwire release artifact")

	sha256Sum := sha256.Sum256(payload)
	sha512Sum := sha512.Sum512(payload)

	tests := []struct {
		name      string
		raw       string
		algorithm checksum.Algorithm
	}{
		{name: "sha256_base64", raw: base64.StdEncoding.EncodeToString(sha256Sum[:]), algorithm: checksum.AlgorithmSHA256},
		{name: "sha512_base64", raw: base64.StdEncoding.EncodeToString(sha512Sum[:]), algorithm: checksum.AlgorithmSHA512},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// The base64 form must not satisfy the hex pattern, or priority
			// ordering would misclassify it.
			require.NotEqual(t, checksum.EncodingHex, checksum.Classify(tc.raw).Encoding)

			fingerprint := checksum.Classify(tc.raw)
			assert.Equal(t, checksum.EncodingBase64, fingerprint.Encoding)
			assert.Equal(t, tc.algorithm, fingerprint.Algorithm)
		})
	}
}

func TestClassifyUnrecognizedLengths(t *testing.T) {
	t.Parallel()

	t.Run("crc_style_hex", func(t *testing.T) {
		t.Parallel()

		// 8 hex chars decode to 4 bytes: a recognizable encoding carrying no
		// recognizable digest. The classifier reports the encoding and
		// declines to guess the algorithm.
		fingerprint := checksum.Classify("deadbeef")
		assert.Equal(t, checksum.EncodingHex, fingerprint.Encoding)
		assert.Equal(t, checksum.AlgorithmUnknown, fingerprint.Algorithm)
	})

	t.Run("crc_style_base64", func(t *testing.T) {
		t.Parallel()

		raw := base64.StdEncoding.EncodeToString([]byte{0xde, 0xad, 0xbe, 0xef})
		require.Len(t, raw, 8)

		fingerprint := checksum.Classify(raw)
		assert.Equal(t, checksum.EncodingBase64, fingerprint.Encoding)
		assert.Equal(t, checksum.AlgorithmUnknown, fingerprint.Algorithm)
	})
}

func TestClassifyUnknownInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "absent", raw: ""},
		{name: "arbitrary_text", raw: "not a checksum at all!"},
		{name: "odd_length_hex", raw: "abcde"},
		{name: "base64_length_not_multiple_of_four", raw: "abcdefg"},
		{name: "invalid_padding", raw: "abc==d=="},
		{name: "unicode", raw: "チェックサム"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fingerprint := checksum.Classify(tc.raw)
			assert.Equal(t, checksum.EncodingUnknown, fingerprint.Encoding)
			assert.Equal(t, checksum.AlgorithmUnknown, fingerprint.Algorithm)
		})
	}
}

// Encoding detection is priority-ordered, not probabilistic: a string valid
// under both character classes resolves to hex because hex is tried first.
func TestClassifyHexTakesPriorityOverBase64(t *testing.T) {
	t.Parallel()

	pureDigits := "20130313144700"

	fingerprint := checksum.Classify(pureDigits)
	assert.Equal(t, checksum.EncodingHex, fingerprint.Encoding)

	mixedHex := "abcdef1234567890abcdef1234567890"

	fingerprint = checksum.Classify(mixedHex)
	assert.Equal(t, checksum.EncodingHex, fingerprint.Encoding)
	assert.Equal(t, checksum.AlgorithmMD5, fingerprint.Algorithm)
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "deadbeef", "3q2+7w==", "garbage input"}

	for _, raw := range inputs {
		first := checksum.Classify(raw)
		second := checksum.Classify(raw)

		assert.Equal(t, first, second)
	}
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hex", checksum.EncodingHex.String())
	assert.Equal(t, "base64", checksum.EncodingBase64.String())
	assert.Equal(t, "unknown", checksum.EncodingUnknown.String())

	assert.Equal(t, "md5", checksum.AlgorithmMD5.String())
	assert.Equal(t, "sha1", checksum.AlgorithmSHA1.String())
	assert.Equal(t, "sha224", checksum.AlgorithmSHA224.String())
	assert.Equal(t, "sha256", checksum.AlgorithmSHA256.String())
	assert.Equal(t, "sha384", checksum.AlgorithmSHA384.String())
	assert.Equal(t, "sha512", checksum.AlgorithmSHA512.String())
	assert.Equal(t, "unknown", checksum.AlgorithmUnknown.String())
}
