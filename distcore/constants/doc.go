// Package constant centralizes coded sentinel errors and telemetry metric
// names shared across distcore packages.
//
// Error sentinels carry stable numeric codes ("0001", "0002", ...) so callers
// can match on errors.Is while surfacing human-readable messages through
// distcore.ValidateBusinessError.
package constant
