package models

import (
	"time"

	"gorm.io/datatypes"
)

// Medication represents a prescribed or self-administered medication.
// StartDate anchors the medication on the timeline.
type Medication struct {
	BaseModel
	Name                string                     `gorm:"size:255;not null" json:"name"`
	GenericName         string                     `gorm:"size:255" json:"genericName,omitempty"`
	Dosage              string                     `gorm:"size:100;not null" json:"dosage"`
	Frequency           string                     `gorm:"size:100;not null" json:"frequency"`
	Route               string                     `gorm:"size:50;default:'oral'" json:"route"`
	PrescribingDoctorID string                     `gorm:"size:36;index" json:"prescribingDoctorId,omitempty"`
	AppointmentID       string                     `gorm:"size:36" json:"appointmentId,omitempty"`
	StartDate           time.Time                  `gorm:"index" json:"startDate"`
	EndDate             *time.Time                 `json:"endDate,omitempty"`
	IsActive            bool                       `gorm:"default:true" json:"isActive"`
	Purpose             string                     `gorm:"size:255" json:"purpose,omitempty"`
	Effects             string                     `gorm:"type:text" json:"effects,omitempty"`
	SideEffects         datatypes.JSONSlice[string] `gorm:"type:json" json:"sideEffects,omitempty"`
	Notes               string                     `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	PrescribingDoctor Doctor `gorm:"foreignKey:PrescribingDoctorID" json:"-"`
}
