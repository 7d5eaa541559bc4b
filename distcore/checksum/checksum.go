package checksum

import (
	"crypto/md5"  //nolint:gosec // digest size lookup only, no hashing
	"crypto/sha1" //nolint:gosec // digest size lookup only, no hashing
	"crypto/sha256"
	"crypto/sha512"
	"regexp"
	"strings"
)

// Encoding is the detected text encoding of a checksum string.
type Encoding uint8

const (
	EncodingUnknown Encoding = iota
	EncodingHex
	EncodingBase64
)

// String returns the string representation of an encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingHex:
		return "hex"
	case EncodingBase64:
		return "base64"
	default:
		return "unknown"
	}
}

// Algorithm is the digest algorithm inferred from a checksum's decoded length.
type Algorithm uint8

const (
	AlgorithmUnknown Algorithm = iota
	AlgorithmMD5
	AlgorithmSHA1
	AlgorithmSHA224
	AlgorithmSHA256
	AlgorithmSHA384
	AlgorithmSHA512
)

// String returns the string representation of an algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmMD5:
		return "md5"
	case AlgorithmSHA1:
		return "sha1"
	case AlgorithmSHA224:
		return "sha224"
	case AlgorithmSHA256:
		return "sha256"
	case AlgorithmSHA384:
		return "sha384"
	case AlgorithmSHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

// Fingerprint is the derived classification of an opaque checksum string.
// It is computed fresh from the raw string on every query and never cached
// as authoritative: the raw string is the only source of truth.
type Fingerprint struct {
	Encoding  Encoding  `json:"encoding"`
	Algorithm Algorithm `json:"algorithm"`
}

var (
	// hexPattern matches an even-length hex string of at least one byte,
	// anchored start to end.
	hexPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{2})+$`)

	// base64Pattern matches the standard base64 alphabet with optional
	// padding; total length divisibility by four is checked separately.
	base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
)

// digestSizes maps a decoded byte length to the only digest algorithm with
// that size. Unlisted lengths (a 4-byte CRC-style value, for example) stay
// unclassified: the classifier never guesses an algorithm from a length it
// does not recognize.
var digestSizes = map[int]Algorithm{
	md5.Size:       AlgorithmMD5,
	sha1.Size:      AlgorithmSHA1,
	sha256.Size224: AlgorithmSHA224,
	sha256.Size:    AlgorithmSHA256,
	sha512.Size384: AlgorithmSHA384,
	sha512.Size:    AlgorithmSHA512,
}

// Classify derives the encoding and algorithm of an opaque checksum string.
// It never fails: absent (empty) or unrecognized input yields an unknown
// fingerprint, which is a legitimate terminal result rather than an error.
//
// Encoding detection is priority-ordered, not probabilistic: hex is tried
// before base64, so a string valid under both character classes (pure
// digits, for example) classifies as hex.
func Classify(raw string) Fingerprint {
	if raw == "" {
		return Fingerprint{}
	}

	if hexPattern.MatchString(raw) {
		return Fingerprint{
			Encoding:  EncodingHex,
			Algorithm: digestSizes[len(raw)/2],
		}
	}

	if len(raw)%4 == 0 && base64Pattern.MatchString(raw) {
		return Fingerprint{
			Encoding:  EncodingBase64,
			Algorithm: digestSizes[base64DecodedLength(raw)],
		}
	}

	return Fingerprint{}
}

// base64DecodedLength computes the decoded byte length from base64 rules:
// three bytes per four characters, minus one byte per trailing '='.
func base64DecodedLength(raw string) int {
	padding := len(raw) - len(strings.TrimRight(raw, "="))

	return len(raw)/4*3 - padding
}
