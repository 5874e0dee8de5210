// Package htmx decides whether a request comes from a fragment-preferring
// client. Both the error-translation middleware and the HTMX route handlers
// depend on this single definition, so the negotiation rule is never
// duplicated.
package htmx

import "net/http"

const (
	// HeaderRequest is set by the htmx JavaScript library on every request
	// it issues.
	HeaderRequest = "HX-Request"
	// HeaderTrigger carries the id of the element that triggered the request.
	HeaderTrigger = "HX-Trigger"
)

// IsHTMX reports whether the request prefers an HTML fragment response.
// The check is an exact, case-sensitive comparison of the HX-Request header
// value against "true"; no trimming is applied.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true"
}

// Trigger returns the value of the HX-Trigger request header, or "" when the
// header is absent.
func Trigger(r *http.Request) string {
	return r.Header.Get(HeaderTrigger)
}
