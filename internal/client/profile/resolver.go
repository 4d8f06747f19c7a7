// Package profile resolves the caller's stored profile and runs the
// first-time bootstrap flow. The resolver never surfaces "no profile yet" as
// an error; that is a normal state that routes the user to setup.
package profile

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/client/identity"
	"github.com/wholesalelens/lenscli/internal/client/models"
	"github.com/wholesalelens/lenscli/internal/common"
	"github.com/wholesalelens/lenscli/internal/logging"
)

const (
	// CacheKey is the per-principal cache slot for the resolved profile.
	CacheKey = "profile"

	defaultTimeout = 15 * time.Second
	maxRetries     = 2
	retryBackoff   = 500 * time.Millisecond
)

// Backend is the profile surface of the backend actor.
type Backend interface {
	// GetCallerUserProfile returns (nil, nil) for the legitimate
	// "no profile yet" case of a well-behaved backend.
	GetCallerUserProfile(ctx context.Context) (*models.Profile, error)
	// HasProfile is a lightweight existence probe.
	HasProfile(ctx context.Context) (bool, error)
	// InitializeProfile is the idempotent bootstrap call.
	InitializeProfile(ctx context.Context) (*models.Profile, error)
	SaveCallerUserProfile(ctx context.Context, p models.Profile) error
}

// Kind tags a resolution outcome.
type Kind string

const (
	// KindAnonymous: resolution was disabled (unauthenticated or connection
	// not ready). Not attempted, not an error.
	KindAnonymous Kind = "anonymous"
	// KindNeedsSetup: authenticated user with no usable profile yet.
	KindNeedsSetup Kind = "needs-setup"
	// KindReady: a complete profile was resolved.
	KindReady Kind = "ready"
)

// Outcome is the tagged result of a resolution.
type Outcome struct {
	Kind    Kind
	Profile *models.Profile
}

// Resolver fetches the caller's profile with a hard timeout and a bounded
// retry policy, and caches the result per principal.
type Resolver struct {
	backend Backend
	store   *cache.Store
	log     logging.Logger

	// Timeout is the hard deadline for one resolution, retries included.
	Timeout time.Duration
}

func NewResolver(backend Backend, store *cache.Store, log logging.Logger) *Resolver {
	return &Resolver{backend: backend, store: store, log: log, Timeout: defaultTimeout}
}

// Resolve fetches the profile for the given identity. With an anonymous or
// absent identity, or with the connection not ready, the operation is
// disabled and KindAnonymous is returned without touching the backend.
//
// The cache key is the principal, never a fixed name: one user's cached
// profile must not be shown to another user who signs in afterwards.
func (r *Resolver) Resolve(ctx context.Context, id *identity.Identity, connReady bool) (Outcome, error) {
	if id == nil || id.IsAnonymous() || !connReady {
		return Outcome{Kind: KindAnonymous}, nil
	}

	if v, ok := r.store.Get(id.Principal, CacheKey); ok {
		p, _ := v.(*models.Profile)
		return outcomeFor(p), nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var p *models.Profile
	b := retry.WithMaxRetries(maxRetries, retry.NewConstant(retryBackoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		fetched, err := r.fetchOnce(ctx)
		if err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		p = fetched
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			err = common.ErrTimeout
		}
		return Outcome{}, err
	}

	r.store.Set(id.Principal, CacheKey, p)
	return outcomeFor(p), nil
}

// fetchOnce performs a single fetch, compensating for backends that raise an
// authorization-shaped error for first-time users: an existence probe
// disambiguates "no profile yet" from a genuine auth failure.
func (r *Resolver) fetchOnce(ctx context.Context) (*models.Profile, error) {
	p, err := r.backend.GetCallerUserProfile(ctx)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if !errors.Is(err, common.ErrUnauthorized) {
		return nil, err
	}

	exists, probeErr := r.backend.HasProfile(ctx)
	if probeErr != nil {
		// The probe auth-failing too means the caller truly is
		// unauthorized; escalate with the probe's error.
		return nil, probeErr
	}
	if !exists {
		r.log.Debug(ctx, "profile fetch rejected but no profile exists, treating as first-time user")
		return nil, nil
	}
	return nil, err
}

// retryable: network and unexpected failures may retry a bounded number of
// times; auth and timeout never do.
func retryable(err error) bool {
	if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrTimeout) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

// Invalidate drops the cached profile for a principal so the next Resolve
// refetches.
func (r *Resolver) Invalidate(principal string) {
	r.store.InvalidateKey(principal, CacheKey)
}

func outcomeFor(p *models.Profile) Outcome {
	if !p.Complete() {
		return Outcome{Kind: KindNeedsSetup, Profile: p}
	}
	return Outcome{Kind: KindReady, Profile: p}
}
