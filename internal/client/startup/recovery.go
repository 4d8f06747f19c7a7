package startup

import (
	"context"
)

// Recovery reacts to classified startup errors: it retries the stage that
// failed, or forces a full sign-out when the failure is an authentication
// failure, which no retry can fix.
type Recovery struct {
	sess *Session
}

func NewRecovery(sess *Session) *Recovery {
	return &Recovery{sess: sess}
}

// Refresh drives the session forward and auto-recovers auth failures:
// rather than presenting a retry button that cannot succeed, an
// auth-classified error triggers an immediate sign-out.
func (r *Recovery) Refresh(ctx context.Context) Status {
	st := r.sess.Refresh(ctx)
	if st.Err != nil && st.Err.Kind == KindAuth {
		r.sess.log.Warn(ctx, "auth failure during startup, signing out", "stage", string(st.Err.Stage))
		r.SignOut(ctx)
		st = r.sess.Refresh(ctx)
	}
	return st
}

// Retry re-attempts the failed stage. With no current error it defaults to
// reconstructing the connection. Auth errors are never retried in place;
// they divert to SignOut.
func (r *Recovery) Retry(ctx context.Context) Status {
	st := r.sess.tracker.Status()
	err := st.Err

	if err != nil && err.Kind == KindAuth {
		r.SignOut(ctx)
		return r.sess.Refresh(ctx)
	}

	r.sess.tracker.ClearError()

	stage := StageActorInit
	if err != nil {
		stage = err.Stage
	}

	switch stage {
	case StageProfileFetch:
		// Purge just the cached profile entry, then refetch it.
		if id := r.sess.idp.Current(); id != nil {
			r.sess.resolver.Invalidate(id.Principal)
		}
		r.sess.resetProfileState()
	default:
		// Reconstructing the connection is the safe default for every
		// other stage.
		if _, err := r.sess.actors.Reconnect(ctx); err != nil {
			r.sess.log.Warn(ctx, "reconnect failed", "error", err)
		}
	}

	return r.sess.Refresh(ctx)
}

// SignOut clears the identity, purges ALL cached query state, resets the
// connection and the tracker. Resilient by construction: even if the remote
// identity clear fails, the local purge and reset still happen, so the user
// is never stuck on a broken error screen.
func (r *Recovery) SignOut(ctx context.Context) {
	if err := r.sess.idp.Clear(ctx); err != nil {
		r.sess.log.Warn(ctx, "identity clear failed, continuing local sign-out", "error", err)
	}

	r.sess.store.Clear()
	r.sess.actors.Reset()
	r.sess.resetProfileState()
	r.sess.tracker.Reset()
}
