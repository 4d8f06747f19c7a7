package api

import (
	"context"

	"github.com/wholesalelens/lenscli/internal/client/cache"
	"github.com/wholesalelens/lenscli/internal/client/models"
	"github.com/wholesalelens/lenscli/internal/client/profile"
)

// GetMembershipCatalog returns the tier pricing catalog. Pricing is the
// same for every signed-in user, so it caches under the global namespace
// and survives identity switches.
func (c *Client) GetMembershipCatalog(ctx context.Context) (*models.MembershipCatalog, error) {
	if v, ok := c.store.Get(cache.GlobalNamespace, keyCatalog); ok {
		return v.(*models.MembershipCatalog), nil
	}

	reply, _, err := c.call(ctx, "getMembershipCatalog", nil)
	if err != nil {
		return nil, err
	}
	catalog := models.CatalogFromMap(reply)
	c.store.Set(cache.GlobalNamespace, keyCatalog, catalog)
	return catalog, nil
}

// UpdateMembershipPricing replaces the price cards for all three tiers.
// Admin only.
func (c *Client) UpdateMembershipPricing(ctx context.Context, basic, pro, enterprise models.MembershipPricing) error {
	args := map[string]any{
		"basic":      basic.ToMap(),
		"pro":        pro.ToMap(),
		"enterprise": enterprise.ToMap(),
	}
	_, _, err := c.call(ctx, "updateMembershipPricing", args)
	if err != nil {
		return err
	}
	c.store.InvalidateKey(cache.GlobalNamespace, keyCatalog)
	return nil
}

// UpdateMembershipTier sets another user's tier. Admin only.
func (c *Client) UpdateMembershipTier(ctx context.Context, principal string, tier models.MembershipTier) error {
	args := map[string]any{"userId": principal, "tier": string(tier)}
	_, _, err := c.call(ctx, "updateMembershipTier", args)
	return err
}

// CreateCheckoutSession starts a membership purchase and returns the
// session to redirect the user to. billingPeriod is "monthly" or "annual".
func (c *Client) CreateCheckoutSession(ctx context.Context, tier models.MembershipTier, billingPeriod string) (*models.PaymentSession, error) {
	args := map[string]any{"tier": string(tier), "billingPeriod": billingPeriod}
	reply, _, err := c.call(ctx, "createCheckoutSession", args)
	if err != nil {
		return nil, err
	}
	sessionID, _ := reply["sessionId"].(string)
	checkoutURL, _ := reply["checkoutUrl"].(string)
	return &models.PaymentSession{SessionID: sessionID, CheckoutURL: checkoutURL}, nil
}

// ConfirmMembershipPurchased settles a completed checkout session. The
// cached profile is dropped so the upgraded tier shows on the next read.
func (c *Client) ConfirmMembershipPurchased(ctx context.Context, sessionID string) error {
	_, ns, err := c.call(ctx, "confirmMembershipPurchased", map[string]any{"sessionId": sessionID})
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, profile.CacheKey)
	return nil
}
