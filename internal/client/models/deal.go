package models

// DealStage is a pipeline column for a wholesaling deal.
type DealStage string

const (
	StageNewLead         DealStage = "NewLead"
	StageContactedSeller DealStage = "ContactedSeller"
	StageNegotiating     DealStage = "Negotiating"
	StageUnderContract   DealStage = "UnderContract"
	StageAssigned        DealStage = "Assigned"
	StageClosed          DealStage = "Closed"
)

// Deal is one record in the deal pipeline. Money fields are whole cents.
type Deal struct {
	ID               int64
	Owner            string
	Stage            DealStage
	SellerName       string
	SellerPhone      string
	Address          string
	ARV              int64
	Repairs          int64
	AskingPrice      int64
	YourOffer        int64
	Notes            string
	EstimatedProfit  int64
	ActualProfit     *int64
	AssignedBuyer    *int64
	ContractDeadline *int64
	CreatedAt        int64
	UpdatedAt        int64
}

func DealFromMap(m map[string]any) *Deal {
	return &Deal{
		ID:               num(m, "id"),
		Owner:            str(m, "owner"),
		Stage:            DealStage(str(m, "stage")),
		SellerName:       str(m, "sellerName"),
		SellerPhone:      str(m, "sellerPhone"),
		Address:          str(m, "address"),
		ARV:              num(m, "arv"),
		Repairs:          num(m, "repairs"),
		AskingPrice:      num(m, "askingPrice"),
		YourOffer:        num(m, "yourOffer"),
		Notes:            str(m, "notes"),
		EstimatedProfit:  num(m, "estimatedProfit"),
		ActualProfit:     optNum(m, "actualProfit"),
		AssignedBuyer:    optNum(m, "assignedBuyer"),
		ContractDeadline: optNum(m, "contractDeadline"),
		CreatedAt:        num(m, "createdAt"),
		UpdatedAt:        num(m, "updatedAt"),
	}
}

// DealRating grades an analyzed deal.
type DealRating string

const (
	RatingA     DealRating = "A"
	RatingB     DealRating = "B"
	RatingC     DealRating = "C"
	RatingRisky DealRating = "Risky"
)

type ComparableSale struct {
	Address   string
	SoldPrice int64
	SoldDate  int64
	Distance  float64
}

// DealAnalysis is the analyzer's output for a candidate property.
type DealAnalysis struct {
	Address                string
	EstimatedARV           int64
	EstimatedRehabCost     int64
	EstimatedMAO           int64
	SuggestedOfferPrice    int64
	EstimatedAssignmentFee int64
	LastSoldPrice          *int64
	DealRating             DealRating
	ComparableSales        []ComparableSale
}

func DealAnalysisFromMap(m map[string]any) *DealAnalysis {
	a := &DealAnalysis{
		Address:                str(m, "address"),
		EstimatedARV:           num(m, "estimatedARV"),
		EstimatedRehabCost:     num(m, "estimatedRehabCost"),
		EstimatedMAO:           num(m, "estimatedMAO"),
		SuggestedOfferPrice:    num(m, "suggestedOfferPrice"),
		EstimatedAssignmentFee: num(m, "estimatedAssignmentFee"),
		LastSoldPrice:          optNum(m, "lastSoldPrice"),
		DealRating:             DealRating(str(m, "dealRating")),
	}
	for _, cm := range mapSlice(m, "comparableSales") {
		a.ComparableSales = append(a.ComparableSales, ComparableSale{
			Address:   str(cm, "address"),
			SoldPrice: num(cm, "soldPrice"),
			SoldDate:  num(cm, "soldDate"),
			Distance:  flt(cm, "distance"),
		})
	}
	return a
}

func (a *DealAnalysis) ToMap() map[string]any {
	comps := make([]any, 0, len(a.ComparableSales))
	for _, c := range a.ComparableSales {
		comps = append(comps, map[string]any{
			"address":   c.Address,
			"soldPrice": c.SoldPrice,
			"soldDate":  c.SoldDate,
			"distance":  c.Distance,
		})
	}
	return map[string]any{
		"address":                a.Address,
		"estimatedARV":           a.EstimatedARV,
		"estimatedRehabCost":     a.EstimatedRehabCost,
		"estimatedMAO":           a.EstimatedMAO,
		"suggestedOfferPrice":    a.SuggestedOfferPrice,
		"estimatedAssignmentFee": a.EstimatedAssignmentFee,
		"lastSoldPrice":          optNumValue(a.LastSoldPrice),
		"dealRating":             string(a.DealRating),
		"comparableSales":        comps,
	}
}
