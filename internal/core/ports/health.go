package ports

import "context"

// HealthChecker reports liveness of one external dependency.
type HealthChecker interface {
	// Ping verifies connectivity; nil means healthy.
	Ping(ctx context.Context) error
	// Name identifies the dependency in the health report.
	Name() string
}
