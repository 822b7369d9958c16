// Package logging defines the structured logger used by the API server and
// the provisioning tool.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key/value
// pairs:
//
//	log.Info(ctx, "request served", "path", path, "status", status)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
