// Package middleware provides request logging, CORS, JSON response/parse
// helpers, and client IP extraction shared by all handlers.
package middleware
