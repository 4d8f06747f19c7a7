package startup

import (
	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/route"
)

// ProfileQuery is the resolver's observable state: whether the fetch has
// settled and, if it settled with a failure, the failure itself. "No profile
// yet" settles successfully and never appears here as an error.
type ProfileQuery struct {
	Settled bool
	Err     error
}

// Snapshot is everything the stage computation depends on.
type Snapshot struct {
	IdentityInitializing bool
	Authenticated        bool
	Actor                actor.State
	Route                route.Class
	Profile              ProfileQuery
}

// Status is the derived startup state handed to the UI.
type Status struct {
	Stage Stage
	Err   *Error
}

// Compute derives the stage and error from a snapshot. It is a pure
// function: recomputation on every input change is the only way stage
// advances, which removes order-of-effect races between the components
// feeding it.
func Compute(s Snapshot) Status {
	// Sign-out (or identity still restoring) regresses everything.
	if s.IdentityInitializing || !s.Authenticated {
		return Status{Stage: StageIdentityInit}
	}

	if s.Actor.Err != nil {
		return Status{Stage: StageActorInit, Err: NewError(StageActorInit, s.Actor.Err)}
	}
	if !s.Actor.Ready {
		return Status{Stage: StageActorInit}
	}

	// Payment-result routes bypass profile gating: the user just needs a
	// ready, authenticated connection to confirm the session.
	if s.Route.IsPaymentResult() {
		return Status{Stage: StageReady}
	}

	if !s.Profile.Settled {
		return Status{Stage: StageProfileFetch}
	}
	if s.Profile.Err != nil {
		return Status{Stage: StageReady, Err: NewError(StageProfileFetch, s.Profile.Err)}
	}
	return Status{Stage: StageReady}
}
