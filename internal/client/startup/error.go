package startup

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/google/uuid"

	"github.com/wholesalelens/lenscli/internal/common"
)

// Kind is the classification bucket of a startup failure. Every surfaced
// error carries exactly one.
type Kind string

const (
	KindTimeout    Kind = "timeout"
	KindNetwork    Kind = "network"
	KindAuth       Kind = "auth"
	KindUnexpected Kind = "unexpected"
)

// Classify buckets an error by the shared sentinels. Unknown errors are
// unexpected, never silently mapped to a friendlier bucket.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, common.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrDelegationExpired):
		return KindAuth
	case errors.Is(err, common.ErrUnavailable):
		return KindNetwork
	default:
		return KindUnexpected
	}
}

// Error is a classified startup failure: the stage it occurred at, a fixed
// user-facing message, and a sanitized technical detail. Transient; cleared
// on retry or recovery.
type Error struct {
	Stage   Stage
	Kind    Kind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("startup failed at %s (%s): %s", e.Stage, e.Kind, e.Detail)
}

// NewError classifies err and attaches the message template for its kind.
func NewError(stage Stage, err error) *Error {
	kind := Classify(err)
	return &Error{
		Stage:   stage,
		Kind:    kind,
		Message: messageFor(stage, kind),
		Detail:  sanitizeDetail(err.Error()),
	}
}

func messageFor(stage Stage, kind Kind) string {
	if stage == StageActorInit && kind == KindNetwork {
		return "Failed to connect to the backend. Please check your connection and try again."
	}
	if stage == StageProfileFetch && kind == KindUnexpected {
		return "Failed to load your profile. Please try again."
	}
	switch kind {
	case KindAuth:
		return "Authentication error. Please sign out and sign in again."
	case KindTimeout:
		return "The request timed out. Please check your connection and try again."
	case KindNetwork:
		return "Network error. Please check your connection and try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

const maxDetailLen = 200

// tokenRun matches long opaque runs that look like credentials or wire
// dumps; those never belong on a screen.
var tokenRun = regexp.MustCompile(`[A-Za-z0-9+/=_.-]{40,}`)

// sanitizeDetail strips token-like runs and caps length before a detail
// string may be displayed.
func sanitizeDetail(s string) string {
	s = tokenRun.ReplaceAllString(s, "[redacted]")
	runes := []rune(s)
	if len(runes) > maxDetailLen {
		s = string(runes[:maxDetailLen]) + "…"
	}
	return s
}

// SupportMailto builds the pre-filled diagnostic report link for the
// "contact support" affordance.
func (e *Error) SupportMailto() string {
	reportID := uuid.NewString()
	v := url.Values{}
	v.Set("subject", "Wholesale Lens startup issue "+reportID)
	v.Set("body", fmt.Sprintf(
		"Report: %s\nStage: %s\nClassification: %s\nMessage: %s\nDetail: %s\n",
		reportID, e.Stage.Label(), e.Kind, e.Message, e.Detail,
	))
	return "mailto:" + common.SupportEmail + "?" + v.Encode()
}
