// Package metrics declares the repository contract for user physical-metrics
// rows (body-measurement samples keyed by user).
package metrics

import (
	"context"

	"github.com/dkarklins/fitauth/internal/server/models"
)

// Repository defines operations over the user_physical_metrics table.
type Repository interface {
	// ListForUser returns all samples for userID, newest first.
	ListForUser(ctx context.Context, userID string) ([]models.PhysicalMetric, error)

	// DeleteForUser removes every sample owned by userID and returns the
	// number of rows affected. Zero is not an error; a user may have none.
	DeleteForUser(ctx context.Context, userID string) (int64, error)
}
