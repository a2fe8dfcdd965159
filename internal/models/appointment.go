package models

import (
	"time"

	"gorm.io/datatypes"
)

// Appointment represents a visit or contact with a doctor.
// Date is the calendar day of the visit; Time is an optional
// clock string ("HH:MM" or "HH:MM:SS") for intra-day ordering.
type Appointment struct {
	BaseModel
	Date            time.Time                   `gorm:"index" json:"date"`
	Time            string                      `gorm:"size:8" json:"time,omitempty"`
	DoctorID        string                      `gorm:"size:36;index" json:"doctorId"`
	Type            string                      `gorm:"size:50" json:"type"`
	Reason          string                      `gorm:"size:255;not null" json:"reason"`
	Findings        string                      `gorm:"type:text" json:"findings,omitempty"`
	Diagnosis       string                      `gorm:"type:text" json:"diagnosis,omitempty"`
	Recommendations datatypes.JSONSlice[string] `gorm:"type:json" json:"recommendations,omitempty"`
	Prescriptions   datatypes.JSONSlice[string] `gorm:"type:json" json:"prescriptions,omitempty"`
	DocumentIDs     datatypes.JSONSlice[string] `gorm:"type:json" json:"documentIds,omitempty"`
	Notes           string                      `gorm:"type:text" json:"notes,omitempty"`
	FollowUpDate    *time.Time                  `json:"followUpDate,omitempty"`

	// Relations
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"-"`
}
