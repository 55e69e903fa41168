package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewSessionID erzeugt die ID einer Dashboard-Sitzung (Cookie-Wert).
func NewSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsValidSessionID prüft das Format eines Cookie-Werts, bevor Redis gefragt wird.
func IsValidSessionID(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
