// Package startup sequences identity, backend connection, route gating and
// profile resolution into a single readiness state machine, classifies the
// failures of each step, and chooses recovery actions.
package startup

// Stage is a named step in the startup sequence. Progression is strictly
// forward; the only skip is the payment-route shortcut from actor-init
// straight to ready. Route classification is synchronous and decided inside
// the same computation, so it has no stage of its own. Stage is always
// derived from component states, never stored independently, so it cannot
// desync from its inputs.
type Stage string

const (
	StageIdentityInit Stage = "identity-init"
	StageActorInit    Stage = "actor-init"
	StageProfileFetch Stage = "profile-fetch"
	StageReady        Stage = "ready"
)

// Label is the human wording used on error screens.
func (s Stage) Label() string {
	switch s {
	case StageIdentityInit:
		return "Sign-in"
	case StageActorInit:
		return "Backend connection"
	case StageProfileFetch:
		return "Profile"
	case StageReady:
		return "Ready"
	default:
		return string(s)
	}
}
