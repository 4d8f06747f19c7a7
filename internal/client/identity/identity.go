// Package identity wraps the delegated-identity provider. The provider hands
// the client a signed delegation token; the backend verifies the signature,
// so the client only introspects claims (principal, expiry, anonymity).
package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wholesalelens/lenscli/internal/common"
	"github.com/wholesalelens/lenscli/internal/logging"
)

// Identity is the credential bound to the current browser/CLI session.
type Identity struct {
	Principal string
	Token     string
	ExpiresAt time.Time
	anonymous bool
}

// IsAnonymous reports whether this is the shared anonymous identity.
func (i *Identity) IsAnonymous() bool {
	return i == nil || i.anonymous
}

// Expired reports whether the delegation has lapsed. An expired delegation
// behaves like a genuine auth failure on first use.
func (i *Identity) Expired(now time.Time) bool {
	return i != nil && !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Anonymous returns the shared anonymous identity.
func Anonymous() *Identity {
	return &Identity{Principal: common.AnonymousPrincipal, anonymous: true}
}

type delegationClaims struct {
	jwt.RegisteredClaims
	Anonymous bool `json:"anon,omitempty"`
}

// ParseDelegation introspects a delegation token without verifying its
// signature; verification is the backend's job, the client only needs the
// principal and the expiry.
func ParseDelegation(token string) (*Identity, error) {
	var claims delegationClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}

	id := &Identity{
		Principal: claims.Subject,
		Token:     token,
		anonymous: claims.Anonymous || claims.Subject == common.AnonymousPrincipal,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// Provider holds the session's current identity. It starts in the
// initializing state until Restore has run once.
type Provider struct {
	log logging.Logger

	mu           sync.Mutex
	current      *Identity
	initializing bool
}

func NewProvider(log logging.Logger) *Provider {
	return &Provider{log: log, initializing: true}
}

// Restore completes provider initialization, adopting a previously issued
// delegation when one is supplied (e.g. from the environment). An invalid
// stored token is discarded rather than surfaced: the user just signs in
// again.
func (p *Provider) Restore(ctx context.Context, storedToken string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if storedToken != "" {
		id, err := ParseDelegation(storedToken)
		if err != nil {
			p.log.Warn(ctx, "discarding stored delegation", "error", err)
		} else {
			p.current = id
		}
	}
	p.initializing = false
}

// Initializing reports whether the provider is still restoring the session.
func (p *Provider) Initializing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initializing
}

// Current returns the session identity, or nil when signed out.
func (p *Provider) Current() *Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Login adopts a freshly issued delegation token as the session identity.
func (p *Provider) Login(ctx context.Context, token string) (*Identity, error) {
	id, err := ParseDelegation(token)
	if err != nil {
		return nil, err
	}
	if id.Expired(time.Now()) {
		return nil, common.ErrDelegationExpired
	}

	p.mu.Lock()
	p.current = id
	p.initializing = false
	p.mu.Unlock()

	p.log.Info(ctx, "signed in", "principal", id.Principal)
	return id, nil
}

// Clear drops the session identity. It never fails locally; remote session
// teardown is the provider's concern and is best effort.
func (p *Provider) Clear(ctx context.Context) error {
	p.mu.Lock()
	had := p.current != nil
	p.current = nil
	p.mu.Unlock()

	if had {
		p.log.Info(ctx, "signed out")
	}
	return nil
}
