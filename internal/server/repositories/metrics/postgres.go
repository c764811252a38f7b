package metrics

import (
	"context"
	"fmt"

	"github.com/dkarklins/fitauth/internal/dbx"
	"github.com/dkarklins/fitauth/internal/server/models"
)

// PostgresRepository implements the metrics Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.PhysicalMetric, error) {
	query := `
		SELECT id, user_id, weight_kg, height_cm, recorded_at
		FROM user_physical_metrics
		WHERE user_id = $1
		ORDER BY recorded_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.PhysicalMetric
	for rows.Next() {
		var m models.PhysicalMetric
		if err := rows.Scan(&m.ID, &m.UserID, &m.WeightKg, &m.HeightCm, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteForUser(ctx context.Context, userID string) (int64, error) {
	query := `
		DELETE FROM user_physical_metrics
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}
