package constant

import "errors"

var (
	// ErrMalformedVersion maps to catalog error code 0001.
	ErrMalformedVersion = errors.New("0001")
	// ErrEnvironmentMismatch maps to catalog error code 0002.
	ErrEnvironmentMismatch = errors.New("0002")
	// ErrDuplicateEntitlementCode maps to catalog error code 0003.
	ErrDuplicateEntitlementCode = errors.New("0003")
	// ErrNilRelease maps to catalog error code 0004.
	ErrNilRelease = errors.New("0004")
	// ErrNilArtifact maps to catalog error code 0005.
	ErrNilArtifact = errors.New("0005")
)
