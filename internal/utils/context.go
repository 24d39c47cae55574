// Package utils provides general-purpose helpers used across the
// application: typed context keys, HTTP response writing, HTTP client
// construction, and identifier generation.
package utils

import (
	"context"
	"net/http"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IncomingCookiesCtxKey is the key under which the cookies of the inbound
// HTTP request are stored. Outbound GraphQL requests made while serving that
// request forward them upstream, which is how credentials are included
// during server-side rendering.
var IncomingCookiesCtxKey = contextKey("incomingCookies")

// WithIncomingCookies returns a copy of ctx carrying cookies.
func WithIncomingCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, IncomingCookiesCtxKey, cookies)
}

// GetIncomingCookiesFromContext retrieves the cookies stored by
// WithIncomingCookies.
//
// Returns the cookies and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetIncomingCookiesFromContext(ctx context.Context) ([]*http.Cookie, bool) {
	cookies, ok := ctx.Value(IncomingCookiesCtxKey).([]*http.Cookie)
	return cookies, ok
}
