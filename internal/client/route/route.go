// Package route classifies browser locations. Payment-result routes bypass
// profile gating during startup; everything else is a normal route.
package route

import (
	"net/url"
	"strings"
)

// Class is the routing decision for a location.
type Class string

const (
	ClassNormal         Class = "normal"
	ClassPaymentSuccess Class = "payment-success"
	ClassPaymentFailure Class = "payment-failure"
)

// IsPaymentResult reports whether the class bypasses profile gating.
func (c Class) IsPaymentResult() bool {
	return c == ClassPaymentSuccess || c == ClassPaymentFailure
}

// Classify inspects a location. Both plain paths (/payment-success) and
// hash routing (#/payment-success) are recognized; the hash wins when both
// are present, matching how the history and hashchange handlers fire.
func Classify(location string) Class {
	u, err := url.Parse(location)
	if err != nil {
		return ClassNormal
	}

	if c := classifyPath(hashPath(u.Fragment)); c != ClassNormal {
		return c
	}
	return classifyPath(u.Path)
}

func classifyPath(path string) Class {
	path = strings.TrimSuffix(path, "/")
	switch path {
	case "/payment-success":
		return ClassPaymentSuccess
	case "/payment-failure":
		return ClassPaymentFailure
	default:
		return ClassNormal
	}
}

// hashPath extracts the path portion of a hash-routing fragment like
// "/payment-success?session_id=cs_123".
func hashPath(fragment string) string {
	if fragment == "" {
		return ""
	}
	if i := strings.IndexByte(fragment, '?'); i >= 0 {
		fragment = fragment[:i]
	}
	if !strings.HasPrefix(fragment, "/") {
		fragment = "/" + fragment
	}
	return fragment
}

// SessionID extracts the payment session id from the query string, checking
// the hash query as well to support hash routing. Returns "" when absent.
func SessionID(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}

	if id := u.Query().Get("session_id"); id != "" {
		return id
	}

	if i := strings.IndexByte(u.Fragment, '?'); i >= 0 {
		if vals, err := url.ParseQuery(u.Fragment[i+1:]); err == nil {
			return vals.Get("session_id")
		}
	}
	return ""
}
