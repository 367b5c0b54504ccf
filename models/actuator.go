package models

// DispenseCommand is the body sent to the physical actuator.
type DispenseCommand struct {
	Command string `json:"command"`
	Level   int    `json:"level"`
}
