package models

// MembershipPricing is the price card for one tier. Amounts are cents.
type MembershipPricing struct {
	MonthlyPriceCents int64
	AnnualPriceCents  int64
	IsOnSale          bool
	SalePriceCents    *int64
}

func (p MembershipPricing) ToMap() map[string]any {
	return map[string]any{
		"monthlyPriceCents": p.MonthlyPriceCents,
		"annualPriceCents":  p.AnnualPriceCents,
		"isOnSale":          p.IsOnSale,
		"salePriceCents":    optNumValue(p.SalePriceCents),
	}
}

func pricingFromMap(m map[string]any) MembershipPricing {
	return MembershipPricing{
		MonthlyPriceCents: num(m, "monthlyPriceCents"),
		AnnualPriceCents:  num(m, "annualPriceCents"),
		IsOnSale:          boolean(m, "isOnSale"),
		SalePriceCents:    optNum(m, "salePriceCents"),
	}
}

// MembershipCatalog is the full pricing catalog. It is not identity-scoped;
// every signed-in user sees the same prices.
type MembershipCatalog struct {
	Basic       MembershipPricing
	Pro         MembershipPricing
	Enterprise  MembershipPricing
	LastUpdated int64
}

func CatalogFromMap(m map[string]any) *MembershipCatalog {
	c := &MembershipCatalog{LastUpdated: num(m, "lastUpdated")}
	if bm, ok := m["basic"].(map[string]any); ok {
		c.Basic = pricingFromMap(bm)
	}
	if pm, ok := m["pro"].(map[string]any); ok {
		c.Pro = pricingFromMap(pm)
	}
	if em, ok := m["enterprise"].(map[string]any); ok {
		c.Enterprise = pricingFromMap(em)
	}
	return c
}

// PaymentSession is a checkout session created for a membership purchase.
type PaymentSession struct {
	SessionID   string
	CheckoutURL string
}
