package api

import (
	"context"

	"github.com/wholesalelens/lenscli/internal/client/models"
)

// BuyerInput carries the fields of a cash-buyer record.
type BuyerInput struct {
	Name                   string
	Phone                  string
	Email                  string
	PreferredAreas         []string
	BudgetMin              int64
	BudgetMax              int64
	PropertyTypePreference string
	Notes                  string
}

func (in BuyerInput) toMap() map[string]any {
	return map[string]any{
		"name":                   in.Name,
		"phone":                  in.Phone,
		"email":                  in.Email,
		"preferredAreas":         anySlice(in.PreferredAreas),
		"budgetMin":              in.BudgetMin,
		"budgetMax":              in.BudgetMax,
		"propertyTypePreference": in.PropertyTypePreference,
		"notes":                  in.Notes,
	}
}

// ListBuyers returns the caller's buyer list, cached per identity. A fetch
// failure degrades to an empty list; the buyer page renders without data
// rather than blocking the rest of the dashboard.
func (c *Client) ListBuyers(ctx context.Context) []*models.Buyer {
	a, err := c.actors.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "buyer list unavailable", "error", err)
		return []*models.Buyer{}
	}
	if v, ok := c.store.Get(a.Principal(), keyBuyers); ok {
		return v.([]*models.Buyer)
	}

	reply, err := c.invoke(ctx, a, "listBuyers", nil)
	if err != nil {
		c.log.Warn(ctx, "buyer list fetch failed", "error", err)
		return []*models.Buyer{}
	}
	buyers := make([]*models.Buyer, 0)
	for _, m := range items(reply, "buyers") {
		buyers = append(buyers, models.BuyerFromMap(m))
	}
	c.store.Set(a.Principal(), keyBuyers, buyers)
	return buyers
}

// GetBuyer returns one buyer, or (nil, nil) if it does not exist.
func (c *Client) GetBuyer(ctx context.Context, buyerID int64) (*models.Buyer, error) {
	a, err := c.actors.Get(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := c.store.Get(a.Principal(), buyerKey(buyerID)); ok {
		return v.(*models.Buyer), nil
	}

	reply, err := c.invoke(ctx, a, "getBuyer", map[string]any{"buyerId": buyerID})
	if err != nil {
		return nil, err
	}
	var buyer *models.Buyer
	if m, ok := reply["buyer"].(map[string]any); ok {
		buyer = models.BuyerFromMap(m)
	}
	c.store.Set(a.Principal(), buyerKey(buyerID), buyer)
	return buyer, nil
}

// CreateBuyer adds a buyer and returns its id.
func (c *Client) CreateBuyer(ctx context.Context, in BuyerInput) (int64, error) {
	reply, ns, err := c.call(ctx, "createBuyer", in.toMap())
	if err != nil {
		return 0, err
	}
	c.store.InvalidateKey(ns, keyBuyers)
	return replyID(reply), nil
}

func (c *Client) UpdateBuyer(ctx context.Context, buyerID int64, in BuyerInput) error {
	args := in.toMap()
	args["buyerId"] = buyerID
	_, ns, err := c.call(ctx, "updateBuyer", args)
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, keyBuyers)
	c.store.InvalidatePrefix(ns, buyerPrefix)
	return nil
}

func (c *Client) DeleteBuyer(ctx context.Context, buyerID int64) error {
	_, ns, err := c.call(ctx, "deleteBuyer", map[string]any{"buyerId": buyerID})
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, keyBuyers)
	c.store.InvalidateKey(ns, buyerKey(buyerID))
	return nil
}
