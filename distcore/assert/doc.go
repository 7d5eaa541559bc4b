// Package assert provides runtime invariant assertions that return errors
// and emit telemetry instead of panicking.
//
// Use it for conditions that must hold in correct code but whose violation
// should degrade gracefully in production.
package assert
