package config

import (
	"sync"

	"github.com/PamelaEduardaS/alimentador/models"

	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// feederSettingsCache holds the current feeder configuration in memory
// and is synchronized with the database.
type feederSettingsCache struct {
	DispenseStep    int
	ActuatorEnabled bool
}

var (
	currentSettings feederSettingsCache
	settingsMutex   sync.Mutex
)

const feederSettingsID = 1 // Single global settings row

// DefaultDispenseStep is how much the level drops per feed action
// when no other step is configured.
const DefaultDispenseStep = 10

// InitFeederSettings loads the feeder configuration from the database
// or creates a default entry if one doesn't exist.
// This should be called on application startup.
func InitFeederSettings(db *gorm.DB) error {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	var settings models.FeederSettings
	result := db.First(&settings, feederSettingsID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			settings = models.FeederSettings{
				ID:              feederSettingsID,
				DispenseStep:    DefaultDispenseStep,
				ActuatorEnabled: true,
			}
			if err := db.Create(&settings).Error; err != nil {
				return err
			}
		} else {
			return result.Error
		}
	}

	currentSettings.DispenseStep = settings.DispenseStep
	currentSettings.ActuatorEnabled = settings.ActuatorEnabled
	return nil
}

// GetFeederSettings returns the current cached feeder configuration.
func GetFeederSettings() (dispenseStep int, actuatorEnabled bool) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()
	return currentSettings.DispenseStep, currentSettings.ActuatorEnabled
}

// SetFeederSettings updates the feeder configuration in both the database and the cache.
func SetFeederSettings(db *gorm.DB, dispenseStep int, actuatorEnabled bool) error {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := models.FeederSettings{
		ID:              feederSettingsID,
		DispenseStep:    dispenseStep,
		ActuatorEnabled: actuatorEnabled,
	}

	// Use Save to update or create if somehow missing (though Init should prevent this)
	if err := db.Save(&settings).Error; err != nil {
		return err
	}

	currentSettings.DispenseStep = dispenseStep
	currentSettings.ActuatorEnabled = actuatorEnabled
	return nil
}
