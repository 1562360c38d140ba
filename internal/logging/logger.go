// Package logging defines the structured logger used by the CareerForge client.
// The only implementation wraps log/slog; tests use Discard.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "kit generated", "kit_id", id, "credits", n)
type Logger interface {
	// Debug logs request-level chatter (HTTP calls, poll ticks).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a recoverable failure, e.g. a swallowed poll error.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
