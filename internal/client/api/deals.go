package api

import (
	"context"

	"github.com/wholesalelens/lenscli/internal/client/models"
)

// DealInput carries the fields of a new deal. Money fields are whole cents.
type DealInput struct {
	SellerName      string
	SellerPhone     string
	Address         string
	ARV             int64
	Repairs         int64
	AskingPrice     int64
	YourOffer       int64
	Notes           string
	EstimatedProfit int64
}

func (in DealInput) toMap() map[string]any {
	return map[string]any{
		"sellerName":      in.SellerName,
		"sellerPhone":     in.SellerPhone,
		"address":         in.Address,
		"arv":             in.ARV,
		"repairs":         in.Repairs,
		"askingPrice":     in.AskingPrice,
		"yourOffer":       in.YourOffer,
		"notes":           in.Notes,
		"estimatedProfit": in.EstimatedProfit,
	}
}

// DealUpdate is the full replacement state for an existing deal.
type DealUpdate struct {
	Stage            models.DealStage
	SellerName       string
	SellerPhone      string
	Address          string
	ARV              int64
	Repairs          int64
	AskingPrice      int64
	YourOffer        int64
	AssignedBuyer    *int64
	ContractDeadline *int64
	Notes            string
	EstimatedProfit  int64
	ActualProfit     *int64
}

// ListDeals returns the caller's deal pipeline, cached per identity.
func (c *Client) ListDeals(ctx context.Context) ([]*models.Deal, error) {
	a, err := c.actors.Get(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := c.store.Get(a.Principal(), keyDeals); ok {
		return v.([]*models.Deal), nil
	}

	reply, err := c.invoke(ctx, a, "listDeals", nil)
	if err != nil {
		return nil, err
	}
	deals := make([]*models.Deal, 0)
	for _, m := range items(reply, "deals") {
		deals = append(deals, models.DealFromMap(m))
	}
	c.store.Set(a.Principal(), keyDeals, deals)
	return deals, nil
}

// GetDeal returns one deal, or (nil, nil) if it does not exist. The absent
// result is cached too.
func (c *Client) GetDeal(ctx context.Context, dealID int64) (*models.Deal, error) {
	a, err := c.actors.Get(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := c.store.Get(a.Principal(), dealKey(dealID)); ok {
		return v.(*models.Deal), nil
	}

	reply, err := c.invoke(ctx, a, "getDeal", map[string]any{"dealId": dealID})
	if err != nil {
		return nil, err
	}
	var deal *models.Deal
	if m, ok := reply["deal"].(map[string]any); ok {
		deal = models.DealFromMap(m)
	}
	c.store.Set(a.Principal(), dealKey(dealID), deal)
	return deal, nil
}

// CreateDeal creates a deal in the NewLead stage and returns its id.
func (c *Client) CreateDeal(ctx context.Context, in DealInput) (int64, error) {
	reply, ns, err := c.call(ctx, "createDeal", in.toMap())
	if err != nil {
		return 0, err
	}
	c.store.InvalidateKey(ns, keyDeals)
	return replyID(reply), nil
}

func (c *Client) UpdateDeal(ctx context.Context, dealID int64, up DealUpdate) error {
	args := map[string]any{
		"dealId":           dealID,
		"stage":            string(up.Stage),
		"sellerName":       up.SellerName,
		"sellerPhone":      up.SellerPhone,
		"address":          up.Address,
		"arv":              up.ARV,
		"repairs":          up.Repairs,
		"askingPrice":      up.AskingPrice,
		"yourOffer":        up.YourOffer,
		"assignedBuyer":    optVal(up.AssignedBuyer),
		"contractDeadline": optVal(up.ContractDeadline),
		"notes":            up.Notes,
		"estimatedProfit":  up.EstimatedProfit,
		"actualProfit":     optVal(up.ActualProfit),
	}
	_, ns, err := c.call(ctx, "updateDeal", args)
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, keyDeals)
	c.store.InvalidatePrefix(ns, dealPrefix)
	return nil
}

func (c *Client) DeleteDeal(ctx context.Context, dealID int64) error {
	_, ns, err := c.call(ctx, "deleteDeal", map[string]any{"dealId": dealID})
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, keyDeals)
	c.store.InvalidateKey(ns, dealKey(dealID))
	return nil
}

// MoveDealToStage advances a deal to a new pipeline column.
func (c *Client) MoveDealToStage(ctx context.Context, dealID int64, stage models.DealStage) error {
	args := map[string]any{"dealId": dealID, "newStage": string(stage)}
	_, ns, err := c.call(ctx, "moveDealToStage", args)
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, keyDeals)
	c.store.InvalidatePrefix(ns, dealPrefix)
	return nil
}

// AssignBuyerToDeal attaches a buyer to a deal.
func (c *Client) AssignBuyerToDeal(ctx context.Context, dealID, buyerID int64) error {
	args := map[string]any{"dealId": dealID, "buyerId": buyerID}
	_, ns, err := c.call(ctx, "assignBuyerToDeal", args)
	if err != nil {
		return err
	}
	c.store.InvalidateKey(ns, keyDeals)
	c.store.InvalidatePrefix(ns, dealPrefix)
	return nil
}

// AnalyzeDeal runs the deal analyzer for an address. Analyses are not
// cached; every run re-evaluates current comparables.
func (c *Client) AnalyzeDeal(ctx context.Context, address string) (*models.DealAnalysis, error) {
	reply, _, err := c.call(ctx, "analyzeDeal", map[string]any{"address": address})
	if err != nil {
		return nil, err
	}
	if m, ok := reply["analysis"].(map[string]any); ok {
		return models.DealAnalysisFromMap(m), nil
	}
	return models.DealAnalysisFromMap(reply), nil
}

// CreateDealFromAnalysis seeds a deal from an analyzer result and returns
// its id.
func (c *Client) CreateDealFromAnalysis(ctx context.Context, analysis *models.DealAnalysis, sellerName, sellerPhone string) (int64, error) {
	args := map[string]any{
		"analysis":    analysis.ToMap(),
		"sellerName":  sellerName,
		"sellerPhone": sellerPhone,
	}
	reply, ns, err := c.call(ctx, "createDealFromAnalysis", args)
	if err != nil {
		return 0, err
	}
	c.store.InvalidateKey(ns, keyDeals)
	return replyID(reply), nil
}
