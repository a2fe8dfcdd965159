package models

import (
	"time"
)

// Doctor represents a treating physician or practice contact.
type Doctor struct {
	BaseModel
	Name       string     `gorm:"size:255;not null" json:"name"`
	Specialty  string     `gorm:"size:255;not null" json:"specialty"`
	Clinic     string     `gorm:"size:255" json:"clinic,omitempty"`
	Address    string     `gorm:"size:255" json:"address,omitempty"`
	Phone      string     `gorm:"size:50" json:"phone,omitempty"`
	Email      string     `gorm:"size:255" json:"email,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	FirstVisit *time.Time `json:"firstVisit,omitempty"`
	IsActive   bool       `gorm:"default:true" json:"isActive"`
}
