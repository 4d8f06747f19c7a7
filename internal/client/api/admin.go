package api

import (
	"context"

	"github.com/wholesalelens/lenscli/internal/client/models"
)

// IsCallerAdmin reports whether the caller holds the admin role.
func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	reply, _, err := c.call(ctx, "isCallerAdmin", nil)
	if err != nil {
		return false, err
	}
	admin, _ := reply["isAdmin"].(bool)
	return admin, nil
}

// AssignCallerUserRole grants a role to a principal. Admin only.
func (c *Client) AssignCallerUserRole(ctx context.Context, principal string, role models.UserRole) error {
	args := map[string]any{"user": principal, "role": string(role)}
	_, _, err := c.call(ctx, "assignCallerUserRole", args)
	return err
}
