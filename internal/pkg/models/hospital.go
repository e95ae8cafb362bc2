package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Hospital represents a hospital in the directory. HospitalID is the public
// natural key ("HOSP-XXXXXXXX"); ID is the internal surrogate key.
type Hospital struct {
	ID          int    `json:"-" db:"id"`
	HospitalID  string `json:"hospital_id" db:"hospital_id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email" db:"email"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	Location    string `json:"location" db:"location"`
}

// NewHospitalID generates a public hospital identifier
func NewHospitalID() string {
	return newPublicID("HOSP")
}

func newPublicID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(raw[:8]))
}
