package api

import (
	"context"

	"github.com/wholesalelens/lenscli/internal/client/models"
)

// The profile methods implement profile.Backend. Profile caching belongs to
// the resolver, not here; these are the raw backend calls it retries over.

// GetCallerUserProfile returns the caller's stored profile, or (nil, nil)
// when no profile record exists yet.
func (c *Client) GetCallerUserProfile(ctx context.Context) (*models.Profile, error) {
	reply, _, err := c.call(ctx, "getCallerUserProfile", nil)
	if err != nil {
		return nil, err
	}
	m, ok := reply["profile"].(map[string]any)
	if !ok {
		return nil, nil
	}
	return models.ProfileFromMap(m), nil
}

// HasProfile reports whether a profile record exists for the caller. Unlike
// the full fetch it never requires an authorized read of the record itself.
func (c *Client) HasProfile(ctx context.Context) (bool, error) {
	reply, _, err := c.call(ctx, "hasProfile", nil)
	if err != nil {
		return false, err
	}
	exists, _ := reply["exists"].(bool)
	return exists, nil
}

// InitializeProfile creates the caller's empty profile record.
func (c *Client) InitializeProfile(ctx context.Context) (*models.Profile, error) {
	reply, _, err := c.call(ctx, "initializeProfile", nil)
	if err != nil {
		return nil, err
	}
	if m, ok := reply["profile"].(map[string]any); ok {
		return models.ProfileFromMap(m), nil
	}
	return &models.Profile{}, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, p models.Profile) error {
	_, _, err := c.call(ctx, "saveCallerUserProfile", map[string]any{"profile": p.ToMap()})
	return err
}

// GetCallerUserRole returns the caller's access-control role.
func (c *Client) GetCallerUserRole(ctx context.Context) (models.UserRole, error) {
	reply, _, err := c.call(ctx, "getCallerUserRole", nil)
	if err != nil {
		return "", err
	}
	role, _ := reply["role"].(string)
	return models.UserRole(role), nil
}
