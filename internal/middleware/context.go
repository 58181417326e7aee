// AngelaMos | 2026
// context.go

package middleware

// contextKey is a private type for request-scoped values so that keys set by
// this package cannot collide with keys set elsewhere.
type contextKey string
