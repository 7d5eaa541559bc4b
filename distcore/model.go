package distcore

import (
	"fmt"

	"github.com/google/uuid"
	constant "github.com/packwire/lib-distcore/distcore/constants"
)

// Entitlement is a named right a license grants, identified by a code that is
// unique within its owning scope. Identity is immutable; lifecycle is owned
// by the issuing service, never by this core.
type Entitlement struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

// Constraint is a release's declared requirement on a specific entitlement.
// A release owns an unordered set of constraints; duplicate codes within one
// release carry no additional meaning.
type Constraint struct {
	ID              uuid.UUID `json:"id"`
	EntitlementCode string    `json:"entitlementCode"`
}

// Release owns a version string and a set of licensing constraints. A release
// with zero constraints is unconstrained and universally satisfiable.
//
// EnvironmentID is an optional isolation scope reference; nil means the
// release is not environment-scoped.
type Release struct {
	ID            uuid.UUID    `json:"id"`
	Version       string       `json:"version"`
	Constraints   []Constraint `json:"constraints,omitempty"`
	EnvironmentID *uuid.UUID   `json:"environmentId,omitempty"`
}

// ReleaseArtifact references exactly one release and carries a caller-provided
// checksum that must never be trusted as metadata: classification is derived
// fresh from the raw string on every query. An empty Checksum means absent.
type ReleaseArtifact struct {
	ID            uuid.UUID  `json:"id"`
	ReleaseID     uuid.UUID  `json:"releaseId"`
	Checksum      string     `json:"checksum,omitempty"`
	Filesize      int64      `json:"filesize"`
	EnvironmentID *uuid.UUID `json:"environmentId,omitempty"`
}

// ValidateEnvironmentConsistency enforces the cross-entity referential rule:
// when both an artifact and its release specify an environment reference they
// must match exactly, and an environment-scoped release cannot own a global
// artifact (or vice versa). Both references absent is valid.
func ValidateEnvironmentConsistency(artifact *ReleaseArtifact, release *Release) error {
	if artifact == nil {
		return fmt.Errorf("%w: artifact is nil", constant.ErrNilArtifact)
	}

	if release == nil {
		return fmt.Errorf("%w: release is nil", constant.ErrNilRelease)
	}

	switch {
	case artifact.EnvironmentID == nil && release.EnvironmentID == nil:
		return nil
	case artifact.EnvironmentID == nil || release.EnvironmentID == nil:
		return fmt.Errorf("%w: artifact %s and release %s differ in environment scoping",
			constant.ErrEnvironmentMismatch, artifact.ID, release.ID)
	case *artifact.EnvironmentID != *release.EnvironmentID:
		return fmt.Errorf("%w: artifact %s references environment %s but release %s references %s",
			constant.ErrEnvironmentMismatch, artifact.ID, *artifact.EnvironmentID, release.ID, *release.EnvironmentID)
	}

	return nil
}
