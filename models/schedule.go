package models

import "time"

// Schedule is a single planned feeding time. There is no recurrence:
// each entry is a one-shot timestamp.
type Schedule struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedBy   uint      `json:"created_by" gorm:"not null"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ScheduleRequest is the expected payload for creating or updating a schedule.
type ScheduleRequest struct {
	ScheduleTime string `json:"schedule_time" binding:"required"`
}
