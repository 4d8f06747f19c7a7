package models

// ZipProfit is one row of the profit-by-zip breakdown.
type ZipProfit struct {
	ZipCode string
	Profit  int64
}

// AnalyticsData aggregates pipeline performance numbers.
type AnalyticsData struct {
	MonthlyRevenue        int64
	AverageAssignmentFee  float64
	CloseRate             float64
	DealConversionPercent float64
	LeadToContractPercent float64
	ProfitByZipCode       []ZipProfit
}

func AnalyticsFromMap(m map[string]any) *AnalyticsData {
	a := &AnalyticsData{
		MonthlyRevenue:        num(m, "monthlyRevenue"),
		AverageAssignmentFee:  flt(m, "averageAssignmentFee"),
		CloseRate:             flt(m, "closeRate"),
		DealConversionPercent: flt(m, "dealConversionPercent"),
		LeadToContractPercent: flt(m, "leadToContractPercent"),
	}
	for _, zm := range mapSlice(m, "profitByZipCode") {
		a.ProfitByZipCode = append(a.ProfitByZipCode, ZipProfit{
			ZipCode: str(zm, "zipCode"),
			Profit:  num(zm, "profit"),
		})
	}
	return a
}
