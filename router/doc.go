// Package router defines the route table using Go 1.22+ method patterns and
// wires each handler through the request-logging middleware.
package router
