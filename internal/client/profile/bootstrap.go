package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/wholesalelens/lenscli/internal/client/models"
	"github.com/wholesalelens/lenscli/internal/common"
	"github.com/wholesalelens/lenscli/internal/logging"
)

// Flow is the profile bootstrap sequence exposed to the setup UI. For
// first-time users Initialize must settle before Save; returning users
// editing their profile skip Initialize.
type Flow struct {
	backend  Backend
	resolver *Resolver
	log      logging.Logger
}

func NewFlow(backend Backend, resolver *Resolver, log logging.Logger) *Flow {
	return &Flow{backend: backend, resolver: resolver, log: log}
}

// Initialize ensures the backend account has the baseline record and
// permissions required to accept a profile save. Idempotent: a repeat call
// reporting "already exists" is success.
func (f *Flow) Initialize(ctx context.Context) error {
	if _, err := f.backend.InitializeProfile(ctx); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("profile bootstrap: %w", err)
	}
	return nil
}

// Save persists user-supplied profile fields and invalidates the cached
// profile entry so the startup tracker advances with the new profile, no
// reload required.
func (f *Flow) Save(ctx context.Context, principal string, p models.Profile) error {
	if err := f.backend.SaveCallerUserProfile(ctx, p); err != nil {
		return fmt.Errorf("profile save: %w", err)
	}
	f.resolver.Invalidate(principal)
	f.log.Info(ctx, "profile saved", "principal", principal)
	return nil
}

// CompleteSetup runs the full first-time sequence: Initialize, then Save.
func (f *Flow) CompleteSetup(ctx context.Context, principal string, p models.Profile) error {
	if err := f.Initialize(ctx); err != nil {
		return err
	}
	return f.Save(ctx, principal, p)
}
