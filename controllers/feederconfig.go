package controllers

import (
	"net/http"

	"github.com/PamelaEduardaS/alimentador/config"
	"github.com/PamelaEduardaS/alimentador/models"

	"github.com/gin-gonic/gin"
)

// GetFeederConfig returns the dispenser configuration.
func GetFeederConfig(c *gin.Context) {
	step, actuatorEnabled := config.GetFeederSettings()
	c.JSON(http.StatusOK, gin.H{
		"dispense_step":    step,
		"actuator_enabled": actuatorEnabled,
	})
}

// UpdateFeederConfig changes the dispense step or toggles the actuator
// relay. Admin only.
func UpdateFeederConfig(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	config.DB.First(&user, userID)
	if user.Role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can change feeder settings"})
		return
	}

	var req models.FeederSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings"})
		return
	}

	if err := config.SetFeederSettings(config.DB, req.DispenseStep, *req.ActuatorEnabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feeder settings updated successfully"})
}
