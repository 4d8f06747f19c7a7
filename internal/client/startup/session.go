package startup

import (
	"context"
	"sync"

	"github.com/wholesalelens/lenscli/internal/client/actor"
	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/client/identity"
	"github.com/wholesalelens/lenscli/internal/client/models"
	"github.com/wholesalelens/lenscli/internal/client/profile"
	"github.com/wholesalelens/lenscli/internal/client/route"
	"github.com/wholesalelens/lenscli/internal/logging"
)

// Session is the explicit context object tying the startup components
// together: one identity provider, one connection manager, one resolver,
// one cache, for the life of a sign-in. There is no hidden global state;
// sign-out resets this object in place.
type Session struct {
	idp      *identity.Provider
	actors   *actor.Manager
	resolver *profile.Resolver
	tracker  *Tracker
	store    *cache.Store
	log      logging.Logger

	mu               sync.Mutex
	location         string
	profilePrincipal string
	profileSettled   bool
	profileOut       profile.Outcome
	profileErr       error
}

func NewSession(idp *identity.Provider, actors *actor.Manager, resolver *profile.Resolver, tracker *Tracker, store *cache.Store, log logging.Logger) *Session {
	return &Session{
		idp:      idp,
		actors:   actors,
		resolver: resolver,
		tracker:  tracker,
		store:    store,
		log:      log,
		location: "/",
	}
}

// SetLocation records the current browser location. Callers invoke this on
// every history navigation and hashchange event; the next Refresh
// re-evaluates the route classifier.
func (s *Session) SetLocation(location string) {
	s.mu.Lock()
	s.location = location
	s.mu.Unlock()
}

// Location returns the last recorded location.
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// Refresh advances the startup sequence one step: it constructs the actor
// when one is due, resolves the profile when the connection is ready and the
// route requires it, then recomputes the derived status. Safe to call on
// every relevant input change.
func (s *Session) Refresh(ctx context.Context) Status {
	if s.idp.Initializing() {
		return s.tracker.Observe(s.snapshot())
	}

	id := s.idp.Current()
	if id == nil || id.IsAnonymous() {
		s.resetProfileState()
		return s.tracker.Observe(s.snapshot())
	}

	// A re-login to a different principal drops the previous user's
	// resolved profile, even when no sign-out happened in between.
	s.mu.Lock()
	if s.profilePrincipal != id.Principal {
		s.profilePrincipal = id.Principal
		s.profileSettled = false
		s.profileOut = profile.Outcome{}
		s.profileErr = nil
	}
	s.mu.Unlock()

	st := s.actors.State()
	if !st.Ready && st.Err == nil {
		// Construction errors land in the manager's state and surface
		// through the snapshot; Refresh itself does not fail.
		if _, err := s.actors.Get(ctx); err != nil {
			s.log.Warn(ctx, "actor construction failed", "error", err)
		}
		st = s.actors.State()
	}

	cls := route.Classify(s.Location())
	if st.Ready && !cls.IsPaymentResult() && !s.profileQuerySettled() {
		out, err := s.resolver.Resolve(ctx, id, true)
		s.mu.Lock()
		s.profileSettled = true
		s.profileOut = out
		s.profileErr = err
		s.mu.Unlock()
	}

	return s.tracker.Observe(s.snapshot())
}

func (s *Session) profileQuerySettled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileSettled
}

func (s *Session) resetProfileState() {
	s.mu.Lock()
	s.profilePrincipal = ""
	s.profileSettled = false
	s.profileOut = profile.Outcome{}
	s.profileErr = nil
	s.mu.Unlock()
}

func (s *Session) snapshot() Snapshot {
	id := s.idp.Current()

	s.mu.Lock()
	pq := ProfileQuery{Settled: s.profileSettled, Err: s.profileErr}
	loc := s.location
	s.mu.Unlock()

	return Snapshot{
		IdentityInitializing: s.idp.Initializing(),
		Authenticated:        id != nil && !id.IsAnonymous(),
		Actor:                s.actors.State(),
		Route:                route.Classify(loc),
		Profile:              pq,
	}
}

// Gates are the signals the surrounding UI combines to pick a screen.
type Gates struct {
	IsAuthenticated bool
	ActorReady      bool
	Profile         *models.Profile
	NeedsSetup      bool
	Stage           Stage
	Err             *Error
}

// Gates reports the current UI gating signals.
func (s *Session) Gates() Gates {
	id := s.idp.Current()
	st := s.tracker.Status()

	s.mu.Lock()
	out := s.profileOut
	settled := s.profileSettled
	s.mu.Unlock()

	return Gates{
		IsAuthenticated: id != nil && !id.IsAnonymous(),
		ActorReady:      s.actors.State().Ready,
		Profile:         out.Profile,
		NeedsSetup:      settled && out.Kind == profile.KindNeedsSetup,
		Stage:           st.Stage,
		Err:             st.Err,
	}
}
