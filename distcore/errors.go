package distcore

import (
	constant "github.com/packwire/lib-distcore/distcore/constants"
)

// Response represents a business error with code, title, and message.
type Response struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e Response) Error() string {
	return e.Message
}

// ValidateBusinessError validates the error and returns the appropriate
// business error with code, title, and message.
//
// Parameters:
//   - err: The sentinel error to be validated (see distcore/constants).
//   - entityType: The type of the entity related to the error.
//   - args: Additional arguments for formatting error messages.
//
// Returns:
//   - error: The appropriate business error, or err unchanged when it carries
//     no business mapping.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrMalformedVersion: Response{
			EntityType: entityType,
			Code:       constant.ErrMalformedVersion.Error(),
			Title:      "Malformed Version",
			Message:    "The release version is not a valid semantic version. Please correct the version string and try again.",
		},
		constant.ErrEnvironmentMismatch: Response{
			EntityType: entityType,
			Code:       constant.ErrEnvironmentMismatch.Error(),
			Title:      "Environment Mismatch",
			Message:    "The artifact and its release reference different environments. Both must be global or reference the same environment.",
		},
		constant.ErrDuplicateEntitlementCode: Response{
			EntityType: entityType,
			Code:       constant.ErrDuplicateEntitlementCode.Error(),
			Title:      "Duplicate Entitlement Code",
			Message:    "An entitlement with the provided code already exists in this scope. Entitlement codes must be unique.",
		},
		constant.ErrNilRelease: Response{
			EntityType: entityType,
			Code:       constant.ErrNilRelease.Error(),
			Title:      "Release Required",
			Message:    "A release reference is required for this operation. Please provide a release and try again.",
		},
		constant.ErrNilArtifact: Response{
			EntityType: entityType,
			Code:       constant.ErrNilArtifact.Error(),
			Title:      "Artifact Required",
			Message:    "An artifact reference is required for this operation. Please provide an artifact and try again.",
		},
	}
	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
