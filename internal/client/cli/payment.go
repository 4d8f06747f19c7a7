package cli

import (
	"context"
	"os"

	"github.com/wholesalelens/lenscli/internal/client/route"
)

// Open records a navigation and drives startup for the new location. On a
// payment-success location carrying a session_id the completed checkout is
// confirmed, which also refreshes the cached profile tier.
func (a *App) Open(ctx context.Context) error {
	loc, err := GetSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	if loc == "" {
		return nil
	}

	a.sess.SetLocation(loc)
	st := a.rec.Refresh(ctx)
	printlnFn("Stage:", st.Stage.Label())

	cls := route.Classify(loc)
	switch cls {
	case route.ClassPaymentSuccess:
		sessionID := route.SessionID(loc)
		if sessionID == "" {
			printlnFn("No payment session found. Please try again or contact support.")
			return nil
		}
		if err := a.api.ConfirmMembershipPurchased(ctx, sessionID); err != nil {
			printlnFn("Failed to confirm your membership:", err.Error())
			return err
		}
		printlnFn("Payment confirmed. Welcome to your new tier!")
	case route.ClassPaymentFailure:
		printlnFn("Payment was not completed. No charges were made.")
	}
	return nil
}
