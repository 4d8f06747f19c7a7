package cli

import (
	"context"
	"os"

	"github.com/wholesalelens/lenscli/internal/client/models"
)

// Setup runs the first-time profile sequence: collect the fields, bootstrap
// the backend record, save.
func (a *App) Setup(ctx context.Context) error {
	id := a.idp.Current()
	if id == nil || id.IsAnonymous() {
		printlnFn("Sign in first.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Display name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("A display name is required.")
		return nil
	}
	email, err := GetSimpleText(a.reader, "Email (optional)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone (optional)", os.Stdout)
	if err != nil {
		return err
	}

	p := models.Profile{
		Name:           name,
		Email:          email,
		Phone:          phone,
		MembershipTier: models.TierBasic,
	}
	if err := a.flow.CompleteSetup(ctx, id.Principal, p); err != nil {
		printlnFn("Setup failed:", err.Error())
		return err
	}

	a.rec.Refresh(ctx)
	printlnFn("Profile saved.")
	return nil
}
