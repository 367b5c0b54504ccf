package models

// FeederSettings stores the dispenser configuration as a single row.
type FeederSettings struct {
	ID              uint `json:"id" gorm:"primaryKey"`
	DispenseStep    int  `json:"dispense_step" gorm:"default:10"`
	ActuatorEnabled bool `json:"actuator_enabled" gorm:"default:true"`
}

// FeederSettingsRequest is the expected payload for updating the feeder configuration.
type FeederSettingsRequest struct {
	DispenseStep    int   `json:"dispense_step" binding:"required,gte=1,lte=100"`
	ActuatorEnabled *bool `json:"actuator_enabled" binding:"required"`
}
