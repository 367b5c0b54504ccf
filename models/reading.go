package models

import "time"

// Reading sources.
const (
	SourceFeed   = "feed"
	SourceRefill = "refill"
	SourceSeed   = "seed"
)

// FoodLevelReading is one entry in the append-only food level history.
// The current level of the hopper is always the most recent reading.
type FoodLevelReading struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	Level      int       `json:"level" gorm:"not null"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// RefillRequest is the expected payload for a manual level adjustment.
// Level is a pointer so that an explicit 0 passes the required check.
type RefillRequest struct {
	Level *int `json:"level" binding:"required,gte=0,lte=100"`
}
