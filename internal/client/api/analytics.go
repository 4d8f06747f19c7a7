package api

import (
	"context"

	"github.com/wholesalelens/lenscli/internal/client/models"
)

// GetAnalytics returns the pipeline performance aggregates, cached per
// identity. Unlike buyers and contracts, an analytics failure surfaces as
// an error; the analytics page shows an error state instead of zeros.
func (c *Client) GetAnalytics(ctx context.Context) (*models.AnalyticsData, error) {
	a, err := c.actors.Get(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := c.store.Get(a.Principal(), keyAnalytics); ok {
		return v.(*models.AnalyticsData), nil
	}

	reply, err := c.invoke(ctx, a, "getAnalytics", nil)
	if err != nil {
		return nil, err
	}
	data := models.AnalyticsFromMap(reply)
	c.store.Set(a.Principal(), keyAnalytics, data)
	return data, nil
}
