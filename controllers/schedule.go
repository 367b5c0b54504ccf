package controllers

import (
	"net/http"
	"time"

	"github.com/PamelaEduardaS/alimentador/config"
	"github.com/PamelaEduardaS/alimentador/models"

	"github.com/gin-gonic/gin"
)

// parseScheduleTime accepts the RFC3339 timestamps the dashboard sends.
func parseScheduleTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// CreateSchedule appends a new feeding time. No dedup or conflict check:
// the same timestamp can be scheduled twice.
func CreateSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule_time is required"})
		return
	}

	scheduledAt, err := parseScheduleTime(req.ScheduleTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule time"})
		return
	}

	schedule := models.Schedule{
		CreatedBy:   userID,
		ScheduledAt: scheduledAt,
	}
	if err := config.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule created successfully"})
}

// ListSchedules returns every schedule ordered by feeding time ascending.
// The feeder is shared, so all household accounts see the same list.
func ListSchedules(c *gin.Context) {
	var schedules []models.Schedule
	if err := config.DB.Order("scheduled_at asc").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// UpdateSchedule changes the feeding time of an existing schedule.
func UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	var schedule models.Schedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule_time is required"})
		return
	}

	scheduledAt, err := parseScheduleTime(req.ScheduleTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule time"})
		return
	}

	schedule.ScheduledAt = scheduledAt
	if err := config.DB.Save(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated successfully"})
}

// DeleteSchedule removes a schedule. Deleting an id that does not exist
// returns 404, so a repeated delete of the same id fails.
func DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	var schedule models.Schedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	if err := config.DB.Delete(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
