package models

import "time"

// PhysicalMetric is a body-measurement sample owned by a user. Rows are
// removed together with the owning account.
type PhysicalMetric struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	WeightKg   float64   `json:"weight_kg"`
	HeightCm   float64   `json:"height_cm"`
	RecordedAt time.Time `json:"recorded_at"`
}
