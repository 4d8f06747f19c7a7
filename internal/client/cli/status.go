package cli

import (
	"context"
	"fmt"
)

// Status drives the startup sequence one step and reports where it stands.
func (a *App) Status(ctx context.Context) error {
	st := a.rec.Refresh(ctx)
	printlnFn("Stage:", st.Stage.Label())

	if st.Err != nil {
		printlnFn("Error:", st.Err.Message)
		if st.Err.Detail != "" {
			printlnFn("Detail:", st.Err.Detail)
		}
		printlnFn("Report:", st.Err.SupportMailto())
		printlnFn("Run 'retry' to try again.")
		return nil
	}

	g := a.sess.Gates()
	if g.NeedsSetup {
		printlnFn("Profile setup required; run 'setup'.")
	}
	if p := g.Profile; p != nil {
		printlnFn(fmt.Sprintf("Signed in as %s (%s tier)", p.Name, p.MembershipTier))
	}
	return nil
}

// Retry re-attempts the failed startup stage.
func (a *App) Retry(ctx context.Context) error {
	st := a.rec.Retry(ctx)
	printlnFn("Stage:", st.Stage.Label())
	if st.Err != nil {
		printlnFn("Error:", st.Err.Message)
	}
	return nil
}

func (a *App) statusLine() string {
	g := a.sess.Gates()
	if !g.IsAuthenticated {
		return "signed out"
	}
	if g.Err != nil {
		return "error"
	}
	return g.Stage.Label()
}
