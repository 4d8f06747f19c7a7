package models

// Buyer is a cash-buyer record on the buyer list.
type Buyer struct {
	ID                     int64
	Owner                  string
	Name                   string
	Phone                  string
	Email                  string
	PreferredAreas         []string
	BudgetMin              int64
	BudgetMax              int64
	PropertyTypePreference string
	Notes                  string
	CreatedAt              int64
}

func BuyerFromMap(m map[string]any) *Buyer {
	return &Buyer{
		ID:                     num(m, "id"),
		Owner:                  str(m, "owner"),
		Name:                   str(m, "name"),
		Phone:                  str(m, "phone"),
		Email:                  str(m, "email"),
		PreferredAreas:         strSlice(m, "preferredAreas"),
		BudgetMin:              num(m, "budgetMin"),
		BudgetMax:              num(m, "budgetMax"),
		PropertyTypePreference: str(m, "propertyTypePreference"),
		Notes:                  str(m, "notes"),
		CreatedAt:              num(m, "createdAt"),
	}
}
