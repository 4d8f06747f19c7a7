package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile_Complete(t *testing.T) {
	var nilProfile *Profile
	require.False(t, nilProfile.Complete())
	require.False(t, (&Profile{Name: ""}).Complete())
	require.True(t, (&Profile{Name: "Dana", MembershipTier: TierBasic}).Complete())
}

func TestDealFromMap_OptionalFields(t *testing.T) {
	d := DealFromMap(map[string]any{
		"id":            float64(7),
		"stage":         "Negotiating",
		"sellerName":    "J. Smith",
		"arv":           float64(25000000),
		"actualProfit":  float64(1200000),
		"assignedBuyer": nil,
	})

	require.Equal(t, int64(7), d.ID)
	require.Equal(t, StageNegotiating, d.Stage)
	require.Equal(t, int64(25000000), d.ARV)
	require.NotNil(t, d.ActualProfit)
	require.Equal(t, int64(1200000), *d.ActualProfit)
	require.Nil(t, d.AssignedBuyer)
	require.Nil(t, d.ContractDeadline)
}

func TestDealAnalysis_RoundTrip(t *testing.T) {
	last := int64(19900000)
	a := &DealAnalysis{
		Address:                "12 Elm St",
		EstimatedARV:           30000000,
		EstimatedMAO:           19500000,
		SuggestedOfferPrice:    18000000,
		EstimatedAssignmentFee: 1000000,
		LastSoldPrice:          &last,
		DealRating:             RatingB,
		ComparableSales: []ComparableSale{
			{Address: "14 Elm St", SoldPrice: 29000000, SoldDate: 1700000000, Distance: 0.2},
		},
	}

	// Simulate the codec: ToMap produces what the wire delivers, except
	// numbers come back as float64.
	m := a.ToMap()
	wire := map[string]any{}
	for k, v := range m {
		switch n := v.(type) {
		case int64:
			wire[k] = float64(n)
		default:
			wire[k] = v
		}
	}
	comps := wire["comparableSales"].([]any)
	cm := comps[0].(map[string]any)
	cm["soldPrice"] = float64(cm["soldPrice"].(int64))
	cm["soldDate"] = float64(cm["soldDate"].(int64))
	wire["lastSoldPrice"] = float64(last)

	got := DealAnalysisFromMap(wire)
	require.Equal(t, a.Address, got.Address)
	require.Equal(t, a.EstimatedMAO, got.EstimatedMAO)
	require.Equal(t, a.DealRating, got.DealRating)
	require.NotNil(t, got.LastSoldPrice)
	require.Equal(t, last, *got.LastSoldPrice)
	require.Len(t, got.ComparableSales, 1)
	require.Equal(t, 0.2, got.ComparableSales[0].Distance)
}

func TestCatalogFromMap(t *testing.T) {
	c := CatalogFromMap(map[string]any{
		"basic": map[string]any{"monthlyPriceCents": float64(0), "annualPriceCents": float64(0)},
		"pro": map[string]any{
			"monthlyPriceCents": float64(4900),
			"annualPriceCents":  float64(49000),
			"isOnSale":          true,
			"salePriceCents":    float64(3900),
		},
		"lastUpdated": float64(1700000001),
	})

	require.Equal(t, int64(4900), c.Pro.MonthlyPriceCents)
	require.True(t, c.Pro.IsOnSale)
	require.NotNil(t, c.Pro.SalePriceCents)
	require.Equal(t, int64(3900), *c.Pro.SalePriceCents)
	require.Equal(t, int64(0), c.Basic.MonthlyPriceCents)
	require.Equal(t, int64(1700000001), c.LastUpdated)
}
