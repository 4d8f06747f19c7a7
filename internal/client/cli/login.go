package cli

import (
	"context"
	"os"
)

// Login adopts a delegation token pasted by the user and drives startup
// through connection and profile resolution.
func (a *App) Login(ctx context.Context) error {
	token, err := GetToken(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "token read failed", "error", err)
		return err
	}

	if _, err := a.idp.Login(ctx, token); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	st := a.rec.Refresh(ctx)
	printlnFn("Signed in; startup stage:", st.Stage.Label())
	return nil
}

// Logout signs out and purges all local state.
func (a *App) Logout(ctx context.Context) error {
	a.rec.SignOut(ctx)
	printlnFn("Signed out.")
	return nil
}
