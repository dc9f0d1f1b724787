package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateExperimentID generates an experiment ID with a timestamp prefix
// and a short random suffix.
func GenerateExperimentID() string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("exp-%s-%s", timestamp, uuid.NewString()[:8])
}

// GenerateID generates a random unique ID
func GenerateID() string {
	return uuid.NewString()
}
