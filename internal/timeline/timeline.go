// Package timeline merges the five record collections of the tracker
// into a single chronologically ordered feed. The transformation is
// pure: it reads its inputs, projects every record into an Entry,
// applies the optional filter and sorts descending by date plus
// optional time of day. It holds no state and never mutates a source
// record, so concurrent calls are safe.
package timeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"medtrack-server/internal/models"
)

// Records bundles the five input collections. Order within each
// collection is irrelevant; Build establishes the output order.
type Records struct {
	Doctors      []models.Doctor
	Appointments []models.Appointment
	Medications  []models.Medication
	Statuses     []models.StatusEntry
	Documents    []models.Document
}

// Build produces the merged, filtered timeline, newest first.
// Every input record yields exactly one entry before filtering.
// A nil filter keeps everything.
func Build(rec Records, filter *Filter) []Entry {
	doctorNames := make(map[string]string, len(rec.Doctors))
	for _, d := range rec.Doctors {
		doctorNames[d.ID] = d.Name
	}

	entries := make([]Entry, 0, len(rec.Appointments)+len(rec.Medications)+len(rec.Statuses)+len(rec.Documents))
	for i := range rec.Appointments {
		entries = append(entries, projectAppointment(&rec.Appointments[i], doctorNames))
	}
	for i := range rec.Medications {
		entries = append(entries, projectMedication(&rec.Medications[i], doctorNames))
	}
	for i := range rec.Statuses {
		entries = append(entries, projectStatus(&rec.Statuses[i]))
	}
	for i := range rec.Documents {
		entries = append(entries, projectDocument(&rec.Documents[i], doctorNames))
	}

	if filter != nil {
		kept := entries[:0]
		for i := range entries {
			if filter.matches(&entries[i]) {
				kept = append(kept, entries[i])
			}
		}
		entries = kept
	}

	// Stable keeps merge order for identical timestamps, which makes
	// repeated builds over the same inputs deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey > entries[j].sortKey
	})

	return entries
}

func projectAppointment(apt *models.Appointment, doctorNames map[string]string) Entry {
	doctorName := doctorNames[apt.DoctorID]
	title := doctorName
	if title == "" {
		title = "Unknown"
	}
	summary := apt.Reason
	if apt.Findings != "" {
		summary += " - " + apt.Findings
	}
	date := dateOnly(apt.Date)
	return Entry{
		ID:      apt.ID,
		Kind:    KindAppointment,
		Date:    date,
		Time:    apt.Time,
		Title:   "Appointment: " + title,
		Summary: summary,
		Related: RelatedEntities{
			DoctorID:      apt.DoctorID,
			AppointmentID: apt.ID,
			DocumentIDs:   apt.DocumentIDs,
		},
		Appointment: apt,
		DoctorName:  doctorName,
		sortKey:     sortableTimestamp(date, apt.Time),
	}
}

func projectMedication(med *models.Medication, doctorNames map[string]string) Entry {
	summary := med.Dosage + ", " + med.Frequency
	if med.Purpose != "" {
		summary += " - " + med.Purpose
	}
	date := dateOnly(med.StartDate)
	return Entry{
		ID:      med.ID,
		Kind:    KindMedication,
		Date:    date,
		Title:   "Medication: " + med.Name,
		Summary: summary,
		Related: RelatedEntities{
			DoctorID:     med.PrescribingDoctorID,
			MedicationID: med.ID,
		},
		Medication: med,
		DoctorName: doctorNames[med.PrescribingDoctorID],
		sortKey:    sortableTimestamp(date, ""),
	}
}

func projectStatus(status *models.StatusEntry) Entry {
	summary := strings.Join(status.Symptoms, ", ")
	if summary == "" {
		summary = truncate(status.Content, 100)
	}
	date := dateOnly(status.Date)
	return Entry{
		ID:       status.ID,
		Kind:     KindStatus,
		Date:     date,
		Time:     status.Time,
		Title:    fmt.Sprintf("Status: Pain %d/10", status.PainLevel),
		Summary:  summary,
		Severity: severityForPain(status.PainLevel),
		Related: RelatedEntities{
			DocumentIDs: status.DocumentIDs,
		},
		Status:  status,
		sortKey: sortableTimestamp(date, status.Time),
	}
}

func projectDocument(doc *models.Document, doctorNames map[string]string) Entry {
	summary := doc.Description
	if summary == "" {
		summary = doc.Type
	}
	date := dateOnly(doc.Date)
	return Entry{
		ID:      doc.ID,
		Kind:    KindDocument,
		Date:    date,
		Title:   "Document: " + doc.Title,
		Summary: summary,
		Related: RelatedEntities{
			DoctorID:      doc.DoctorID,
			AppointmentID: doc.AppointmentID,
			DocumentIDs:   []string{doc.ID},
		},
		Document:   doc,
		DoctorName: doctorNames[doc.DoctorID],
		sortKey:    sortableTimestamp(date, ""),
	}
}

// dateOnly truncates t to its own calendar day at midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sortableTimestamp is the composite sort key: the date at midnight
// UTC in milliseconds, plus the parsed time of day when present.
// An unparsable clock string counts as absent.
func sortableTimestamp(date time.Time, clock string) int64 {
	ms := date.UnixMilli()
	if secs, ok := parseClock(clock); ok {
		ms += int64(secs) * 1000
	}
	return ms
}

// parseClock parses "HH:MM" or "HH:MM:SS" into seconds since
// midnight. Anything else reports false.
func parseClock(clock string) (int, bool) {
	if clock == "" {
		return 0, false
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	seconds := 0
	if len(parts) == 3 {
		seconds, err = strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, false
		}
	}
	return hours*3600 + minutes*60 + seconds, true
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
