package cli

import (
	"context"
	"fmt"
)

func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Deals lists the caller's deal pipeline.
func (a *App) Deals(ctx context.Context) error {
	deals, err := a.api.ListDeals(ctx)
	if err != nil {
		printlnFn("Failed to list deals:", err.Error())
		return err
	}
	if len(deals) == 0 {
		printlnFn("No deals in the pipeline.")
		return nil
	}
	for _, d := range deals {
		printlnFn(fmt.Sprintf("#%d [%s] %s, offer %s, est. profit %s",
			d.ID, d.Stage, d.Address, dollars(d.YourOffer), dollars(d.EstimatedProfit)))
	}
	return nil
}

// Buyers lists the caller's cash buyers.
func (a *App) Buyers(ctx context.Context) error {
	buyers := a.api.ListBuyers(ctx)
	if len(buyers) == 0 {
		printlnFn("No buyers on the list.")
		return nil
	}
	for _, b := range buyers {
		printlnFn(fmt.Sprintf("#%d %s, budget %s to %s",
			b.ID, b.Name, dollars(b.BudgetMin), dollars(b.BudgetMax)))
	}
	return nil
}
