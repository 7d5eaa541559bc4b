package entitlement

// Mode selects how aggressively constraint satisfaction is judged.
//
// Permissive mode accepts a release when at least one of its required
// entitlements is granted. Strict mode requires every required entitlement to
// be granted, with no tolerance for partial matches. Unconstrained releases
// satisfy both modes.
type Mode uint8

const (
	ModePermissive Mode = iota
	ModeStrict
)

// String returns the string representation of a satisfaction mode.
func (m Mode) String() string {
	switch m {
	case ModePermissive:
		return "permissive"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}
