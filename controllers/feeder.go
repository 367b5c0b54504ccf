package controllers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/PamelaEduardaS/alimentador/config"
	"github.com/PamelaEduardaS/alimentador/models"
	"github.com/PamelaEduardaS/alimentador/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentLevel returns the most recent food level reading, or 0 when the
// ledger is still empty.
func currentLevel(db *gorm.DB) (int, error) {
	var reading models.FoodLevelReading
	err := db.Order("recorded_at desc, id desc").First(&reading).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return reading.Level, nil
}

// GetFoodLevel returns the current hopper level.
func GetFoodLevel(c *gin.Context) {
	level, err := currentLevel(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read food level"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"level": level})
}

var errInsufficientLevel = errors.New("insufficient food level")

// feedMutex serializes feed actions. The read-then-append in
// appendFeedReading would otherwise let two concurrent feed requests read
// the same head reading and both write level−step. The service runs as a
// single instance in front of one feeder, so an in-process lock is enough.
var feedMutex sync.Mutex

// appendFeedReading performs the ledger side of one feed action: reads the
// current level, rejects an empty hopper, and appends the decremented
// reading in one transaction.
func appendFeedReading(userID uint, step int) (models.FoodLevelReading, error) {
	feedMutex.Lock()
	defer feedMutex.Unlock()

	var reading models.FoodLevelReading
	tx := config.DB.Begin()
	if tx.Error != nil {
		return reading, tx.Error
	}

	level, err := currentLevel(tx)
	if err != nil {
		tx.Rollback()
		return reading, err
	}
	if level <= 0 {
		tx.Rollback()
		return reading, errInsufficientLevel
	}

	reading = models.FoodLevelReading{
		UserID:     userID,
		Level:      utils.ClampLevel(level - step),
		Source:     models.SourceFeed,
		RecordedAt: time.Now(),
	}
	if err := tx.Create(&reading).Error; err != nil {
		tx.Rollback()
		return reading, err
	}
	return reading, tx.Commit().Error
}

// Feed performs one feed action: drops the level by the configured step,
// floored at 0, and signals the actuator. Rejected when the hopper is empty.
func Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	step, actuatorEnabled := config.GetFeederSettings()

	reading, err := appendFeedReading(userID, step)
	if errors.Is(err, errInsufficientLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient food level"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record feed action"})
		return
	}

	// The ledger write is committed at this point. A relay failure is
	// logged and the response still succeeds.
	if actuatorEnabled {
		if err := utils.TriggerDispense(reading.Level); err != nil {
			log.Printf("actuator dispense failed: %v", err)
		}
	}

	BroadcastLevel(reading)
	if utils.IsLevelCritical(reading.Level) {
		BroadcastLowLevelAlert(reading)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food dispensed successfully", "level": reading.Level})
}

// RecordRefill appends a manual level adjustment, typically after the owner
// refills the hopper.
func RecordRefill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.RefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Level must be between 0 and 100"})
		return
	}

	reading := models.FoodLevelReading{
		UserID:     userID,
		Level:      *req.Level,
		Source:     models.SourceRefill,
		RecordedAt: time.Now(),
	}
	if err := config.DB.Create(&reading).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record level"})
		return
	}

	BroadcastLevel(reading)
	c.JSON(http.StatusOK, gin.H{"message": "Food level updated successfully", "level": reading.Level})
}

// GetHistory returns food level readings, newest first. Admins see every
// account's actions and may filter by user_id; regular users see their own.
func GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}

	var records []models.FoodLevelReading
	requestedUserID := c.Query("user_id")

	if user.Role == "admin" {
		if requestedUserID != "" {
			if err := config.DB.Where("user_id = ?", requestedUserID).Order("recorded_at desc").Find(&records).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for requested user"})
				return
			}
		} else {
			if err := config.DB.Order("recorded_at desc").Find(&records).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
				return
			}
		}
	} else {
		if err := config.DB.Where("user_id = ?", userID).Order("recorded_at desc").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user history"})
			return
		}
	}

	c.JSON(http.StatusOK, records)
}

// ExportCSV sends the food level history as a CSV file.
func ExportCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	config.DB.First(&user, userID)
	query := config.DB.Order("recorded_at desc")
	if user.Role != "admin" {
		query = query.Where("user_id = ?", userID)
	}

	var records []models.FoodLevelReading
	query.Find(&records)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=food_level_history.csv")
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"recorded_at", "level", "source"})
	for _, record := range records {
		writer.Write([]string{
			record.RecordedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", record.Level),
			record.Source,
		})
	}
}

// SeedInitialLevel writes a first reading from the INITIAL_FOOD_LEVEL
// environment variable when the ledger is empty. Without it a fresh
// installation reports level 0 until the hopper is refilled.
func SeedInitialLevel(db *gorm.DB) error {
	raw := os.Getenv("INITIAL_FOOD_LEVEL")
	if raw == "" {
		return nil
	}

	level, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid INITIAL_FOOD_LEVEL %q: %w", raw, err)
	}

	var count int64
	if err := db.Model(&models.FoodLevelReading{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	reading := models.FoodLevelReading{
		Level:      utils.ClampLevel(level),
		Source:     models.SourceSeed,
		RecordedAt: time.Now(),
	}
	return db.Create(&reading).Error
}
