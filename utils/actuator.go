package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/PamelaEduardaS/alimentador/models"
)

// TriggerDispense forwards a "release food" command to the physical actuator.
// The call is best effort: the ledger write has already been committed by the
// time this runs, and a failure here is logged by the caller, not rolled back.
// With no ACTUATOR_URL configured the relay is disabled and this is a no-op.
func TriggerDispense(level int) error {
	actuatorURL := os.Getenv("ACTUATOR_URL")
	if actuatorURL == "" {
		return nil
	}

	requestBody, _ := json.Marshal(models.DispenseCommand{
		Command: "dispense",
		Level:   level,
	})

	resp, err := http.Post(actuatorURL, "application/json", bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("actuator returned status %d", resp.StatusCode)
	}
	return nil
}
