package config

import (
	"fmt"
	"testing"

	"github.com/PamelaEduardaS/alimentador/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.FeederSettings{}))
	return db
}

func TestInitFeederSettingsCreatesDefaults(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, InitFeederSettings(db))

	step, actuatorEnabled := GetFeederSettings()
	assert.Equal(t, DefaultDispenseStep, step)
	assert.True(t, actuatorEnabled)

	var settings models.FeederSettings
	assert.NoError(t, db.First(&settings, 1).Error)
	assert.Equal(t, DefaultDispenseStep, settings.DispenseStep)
}

func TestSetFeederSettingsPersists(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, InitFeederSettings(db))

	assert.NoError(t, SetFeederSettings(db, 25, false))

	step, actuatorEnabled := GetFeederSettings()
	assert.Equal(t, 25, step)
	assert.False(t, actuatorEnabled)

	// A fresh init reads back what was stored, not the defaults
	assert.NoError(t, InitFeederSettings(db))
	step, actuatorEnabled = GetFeederSettings()
	assert.Equal(t, 25, step)
	assert.False(t, actuatorEnabled)
}
