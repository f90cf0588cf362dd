// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"tapquote_backend/platform/config"
	"tapquote_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and rate-limit settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Version is reported by the service banner route.
	Version string
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
