package controllers

import (
	"github.com/PamelaEduardaS/alimentador/config"
	"github.com/PamelaEduardaS/alimentador/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.User{}, &models.FoodLevelReading{}, &models.Schedule{}, &models.FeederSettings{})
}
