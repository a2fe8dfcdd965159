package models

import (
	"time"

	"gorm.io/datatypes"
)

// StatusEntry represents a daily health-status record. PainLevel is
// an integer in [0,10]; Content carries the free-text entry body.
type StatusEntry struct {
	BaseModel
	Date             time.Time                  `gorm:"index" json:"date"`
	Time             string                     `gorm:"size:8" json:"time,omitempty"`
	PainLevel        int                        `gorm:"not null" json:"painLevel"`
	Symptoms         datatypes.JSONSlice[string] `gorm:"type:json" json:"symptoms,omitempty"`
	AffectedAreas    datatypes.JSONSlice[string] `gorm:"type:json" json:"affectedAreas,omitempty"`
	GeneralCondition string                     `gorm:"size:50" json:"generalCondition,omitempty"`
	Sleep            string                     `gorm:"size:100" json:"sleep,omitempty"`
	Appetite         string                     `gorm:"size:100" json:"appetite,omitempty"`
	Mood             string                     `gorm:"size:50" json:"mood,omitempty"`
	Notes            string                     `gorm:"type:text" json:"notes,omitempty"`
	Content          string                     `gorm:"type:text" json:"content,omitempty"`
	MedicationsTaken datatypes.JSONSlice[string] `gorm:"type:json" json:"medicationsTaken,omitempty"`
	DocumentIDs      datatypes.JSONSlice[string] `gorm:"type:json" json:"documentIds,omitempty"`
}
