package timeline

import (
	"time"

	"medtrack-server/internal/models"
)

// Kind discriminates the record type behind a timeline entry.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindMedication  Kind = "medication"
	KindStatus      Kind = "status"
	KindDocument    Kind = "document"
)

// Severity is a coarse bucket derived from the pain level of a
// status entry. Entries of other kinds carry no severity.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityForPain buckets a pain level in [0,10].
func severityForPain(level int) Severity {
	switch {
	case level <= 3:
		return SeverityLow
	case level <= 6:
		return SeverityMedium
	case level <= 8:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// RelatedEntities holds the optional cross-references an entry
// carries for filtering and detail navigation.
type RelatedEntities struct {
	DoctorID      string   `json:"doctorId,omitempty"`
	AppointmentID string   `json:"appointmentId,omitempty"`
	MedicationID  string   `json:"medicationId,omitempty"`
	DocumentIDs   []string `json:"documentIds,omitempty"`
}

// Entry is one item of the merged timeline. The ID is the source
// record's id and is only unique per kind; consumers must key on
// (Kind, ID). Exactly one of the source record pointers is set,
// matching Kind.
type Entry struct {
	ID       string          `json:"id"`
	Kind     Kind            `json:"type"`
	Date     time.Time       `json:"date"`
	Time     string          `json:"time,omitempty"`
	Title    string          `json:"title"`
	Summary  string          `json:"summary"`
	Severity Severity        `json:"severity,omitempty"`
	Related  RelatedEntities `json:"relatedEntities"`

	Appointment *models.Appointment `json:"appointment,omitempty"`
	Medication  *models.Medication  `json:"medication,omitempty"`
	Status      *models.StatusEntry `json:"status,omitempty"`
	Document    *models.Document    `json:"document,omitempty"`

	// DoctorName is denormalized from the doctor lookup for kinds
	// that reference a doctor.
	DoctorName string `json:"doctorName,omitempty"`

	sortKey int64
}

// kindTraits records which filter criteria apply to a kind. A new
// record kind only needs a row here for the generic filter step to
// treat it correctly.
type kindTraits struct {
	hasDoctor    bool
	hasPainLevel bool
}

var traits = map[Kind]kindTraits{
	KindAppointment: {hasDoctor: true},
	KindMedication:  {hasDoctor: true},
	KindStatus:      {hasPainLevel: true},
	KindDocument:    {hasDoctor: true},
}
