package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document represents a medical document (report, lab result,
// prescription, referral...). The file itself lives outside the
// database; FilePath points at it.
type Document struct {
	BaseModel
	Type          string                     `gorm:"size:50;not null" json:"type"`
	Title         string                     `gorm:"size:255;not null" json:"title"`
	Description   string                     `gorm:"type:text" json:"description,omitempty"`
	FilePath      string                     `gorm:"size:512;not null" json:"filePath"`
	FileType      string                     `gorm:"size:50" json:"fileType"`
	FileSize      int64                      `json:"fileSize,omitempty"`
	Date          time.Time                  `gorm:"index" json:"date"`
	DoctorID      string                     `gorm:"size:36;index" json:"doctorId,omitempty"`
	AppointmentID string                     `gorm:"size:36" json:"appointmentId,omitempty"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:json" json:"tags,omitempty"`

	// Relations
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"-"`
}
