package timeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtrack-server/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func appointment(id, doctorID string, day time.Time) models.Appointment {
	return models.Appointment{
		BaseModel: models.BaseModel{ID: id},
		Date:      day,
		DoctorID:  doctorID,
		Reason:    "Checkup",
	}
}

func statusEntry(id string, day time.Time, pain int) models.StatusEntry {
	return models.StatusEntry{
		BaseModel: models.BaseModel{ID: id},
		Date:      day,
		PainLevel: pain,
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	entries := Build(Records{}, nil)
	assert.Empty(t, entries)

	entries = Build(Records{}, &Filter{DoctorID: "d1"})
	assert.Empty(t, entries)
}

func TestBuildTotalityWithoutFilter(t *testing.T) {
	rec := Records{
		Doctors: []models.Doctor{{BaseModel: models.BaseModel{ID: "d1"}, Name: "Dr. Weber"}},
		Appointments: []models.Appointment{
			appointment("a1", "d1", date(2024, 3, 1)),
			appointment("a2", "d1", date(2024, 3, 5)),
		},
		Medications: []models.Medication{{
			BaseModel: models.BaseModel{ID: "m1"},
			Name:      "Ibuprofen",
			Dosage:    "400mg",
			Frequency: "twice daily",
			StartDate: date(2024, 2, 20),
		}},
		Statuses: []models.StatusEntry{statusEntry("s1", date(2024, 3, 2), 5)},
		Documents: []models.Document{{
			BaseModel: models.BaseModel{ID: "doc1"},
			Title:     "Blood work",
			Type:      "Lab",
			Date:      date(2024, 3, 3),
		}},
	}

	entries := Build(rec, nil)
	assert.Len(t, entries, 5)

	counts := map[Kind]int{}
	for _, e := range entries {
		counts[e.Kind]++
	}
	assert.Equal(t, 2, counts[KindAppointment])
	assert.Equal(t, 1, counts[KindMedication])
	assert.Equal(t, 1, counts[KindStatus])
	assert.Equal(t, 1, counts[KindDocument])
}

func TestBuildKindMatchesPayload(t *testing.T) {
	rec := Records{
		Appointments: []models.Appointment{appointment("a1", "d1", date(2024, 3, 1))},
		Medications: []models.Medication{{
			BaseModel: models.BaseModel{ID: "m1"},
			Name:      "Ibuprofen",
			StartDate: date(2024, 3, 2),
		}},
		Statuses: []models.StatusEntry{statusEntry("s1", date(2024, 3, 3), 4)},
		Documents: []models.Document{{
			BaseModel: models.BaseModel{ID: "doc1"},
			Title:     "Referral",
			Date:      date(2024, 3, 4),
		}},
	}

	for _, e := range Build(rec, nil) {
		switch e.Kind {
		case KindAppointment:
			require.NotNil(t, e.Appointment)
			assert.Equal(t, e.ID, e.Appointment.ID)
		case KindMedication:
			require.NotNil(t, e.Medication)
			assert.Equal(t, e.ID, e.Medication.ID)
		case KindStatus:
			require.NotNil(t, e.Status)
			assert.Equal(t, e.ID, e.Status.ID)
		case KindDocument:
			require.NotNil(t, e.Document)
			assert.Equal(t, e.ID, e.Document.ID)
		default:
			t.Fatalf("unexpected kind %q", e.Kind)
		}
	}
}

func TestBuildSortsDescendingByDate(t *testing.T) {
	rec := Records{
		Appointments: []models.Appointment{appointment("a1", "d1", date(2024, 3, 1))},
		Statuses:     []models.StatusEntry{statusEntry("s1", date(2024, 3, 2), 8)},
	}

	entries := Build(rec, nil)
	require.Len(t, entries, 2)
	assert.Equal(t, KindStatus, entries[0].Kind)
	assert.Equal(t, KindAppointment, entries[1].Kind)
}

func TestTimeOfDayBreaksSameDayTies(t *testing.T) {
	morning := statusEntry("s1", date(2024, 3, 2), 2)
	morning.Time = "09:30"
	afternoon := statusEntry("s2", date(2024, 3, 2), 2)
	afternoon.Time = "14:00"

	entries := Build(Records{Statuses: []models.StatusEntry{morning, afternoon}}, nil)
	require.Len(t, entries, 2)
	assert.Equal(t, "s2", entries[0].ID)
	assert.Equal(t, "s1", entries[1].ID)
}

func TestMalformedTimeSortsDateOnly(t *testing.T) {
	broken := statusEntry("s1", date(2024, 3, 2), 2)
	broken.Time = "abc"
	timed := statusEntry("s2", date(2024, 3, 2), 2)
	timed.Time = "00:01"

	var entries []Entry
	assert.NotPanics(t, func() {
		entries = Build(Records{Statuses: []models.StatusEntry{broken, timed}}, nil)
	})
	require.Len(t, entries, 2)
	// The broken time counts as midnight, so the 00:01 entry wins.
	assert.Equal(t, "s2", entries[0].ID)
}

func TestDoctorFilterKeepsDoctorlessEntries(t *testing.T) {
	rec := Records{
		Appointments: []models.Appointment{appointment("a1", "d1", date(2024, 3, 1))},
		Statuses:     []models.StatusEntry{statusEntry("s1", date(2024, 3, 2), 8)},
	}

	entries := Build(rec, &Filter{DoctorID: "d1"})
	require.Len(t, entries, 2)
	assert.Equal(t, KindStatus, entries[0].Kind)
	assert.Equal(t, KindAppointment, entries[1].Kind)
}

func TestDoctorFilterExcludesOtherDoctors(t *testing.T) {
	rec := Records{
		Appointments: []models.Appointment{
			appointment("a1", "d1", date(2024, 3, 1)),
			appointment("a2", "d2", date(2024, 3, 2)),
		},
		Medications: []models.Medication{{
			BaseModel: models.BaseModel{ID: "m1"},
			Name:      "Ibuprofen",
			StartDate: date(2024, 3, 3),
			// No prescribing doctor: must survive the filter.
		}},
	}

	entries := Build(rec, &Filter{DoctorID: "d1"})
	require.Len(t, entries, 2)
	ids := []string{entries[0].ID, entries[1].ID}
	assert.Contains(t, ids, "a1")
	assert.Contains(t, ids, "m1")
}

func TestKindFilter(t *testing.T) {
	rec := Records{
		Appointments: []models.Appointment{appointment("a1", "d1", date(2024, 3, 1))},
		Statuses:     []models.StatusEntry{statusEntry("s1", date(2024, 3, 2), 8)},
	}

	entries := Build(rec, &Filter{Kinds: []Kind{KindAppointment}})
	require.Len(t, entries, 1)
	assert.Equal(t, "a1", entries[0].ID)

	// An unrecognized tag matches nothing rather than erroring.
	entries = Build(rec, &Filter{Kinds: []Kind{Kind("surgery")}})
	assert.Empty(t, entries)

	// An empty kind set means no restriction.
	entries = Build(rec, &Filter{Kinds: nil})
	assert.Len(t, entries, 2)
}

func TestPainFilterPassesNonStatusKinds(t *testing.T) {
	minPain := 5
	rec := Records{
		Statuses: []models.StatusEntry{statusEntry("s1", date(2024, 3, 1), 3)},
		Documents: []models.Document{{
			BaseModel: models.BaseModel{ID: "doc1"},
			Title:     "X-ray",
			Type:      "Imaging",
			Date:      date(2024, 3, 2),
		}},
	}

	entries := Build(rec, &Filter{MinPainLevel: &minPain})
	require.Len(t, entries, 1)
	assert.Equal(t, KindDocument, entries[0].Kind)
}

func TestPainFilterBounds(t *testing.T) {
	rec := Records{Statuses: []models.StatusEntry{
		statusEntry("s1", date(2024, 3, 1), 2),
		statusEntry("s2", date(2024, 3, 2), 5),
		statusEntry("s3", date(2024, 3, 3), 9),
	}}

	minPain, maxPain := 3, 7
	entries := Build(rec, &Filter{MinPainLevel: &minPain, MaxPainLevel: &maxPain})
	require.Len(t, entries, 1)
	assert.Equal(t, "s2", entries[0].ID)

	// Bounds are inclusive.
	minPain, maxPain = 2, 9
	entries = Build(rec, &Filter{MinPainLevel: &minPain, MaxPainLevel: &maxPain})
	assert.Len(t, entries, 3)
}

func TestDateRangeFilterInclusive(t *testing.T) {
	rec := Records{Statuses: []models.StatusEntry{
		statusEntry("s1", date(2024, 2, 28), 1),
		statusEntry("s2", date(2024, 3, 1), 1),
		statusEntry("s3", date(2024, 3, 15), 1),
		statusEntry("s4", date(2024, 3, 16), 1),
	}}

	start := date(2024, 3, 1)
	end := date(2024, 3, 15)
	entries := Build(rec, &Filter{StartDate: &start, EndDate: &end})
	require.Len(t, entries, 2)
	assert.Equal(t, "s3", entries[0].ID)
	assert.Equal(t, "s2", entries[1].ID)
}

func TestDateFilterIgnoresTimeComponent(t *testing.T) {
	rec := Records{Statuses: []models.StatusEntry{
		statusEntry("s1", time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC), 1),
	}}

	// A bound carrying a clock component still compares at day precision.
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	entries := Build(rec, &Filter{StartDate: &start})
	assert.Len(t, entries, 1)
}

func TestSeverityMapping(t *testing.T) {
	cases := map[int]Severity{
		0:  SeverityLow,
		3:  SeverityLow,
		4:  SeverityMedium,
		6:  SeverityMedium,
		7:  SeverityHigh,
		8:  SeverityHigh,
		9:  SeverityCritical,
		10: SeverityCritical,
	}
	for level, want := range cases {
		entries := Build(Records{Statuses: []models.StatusEntry{statusEntry("s1", date(2024, 3, 1), level)}}, nil)
		require.Len(t, entries, 1)
		assert.Equal(t, want, entries[0].Severity, "pain level %d", level)
	}
}

func TestOnlyStatusEntriesCarrySeverity(t *testing.T) {
	rec := Records{
		Appointments: []models.Appointment{appointment("a1", "d1", date(2024, 3, 1))},
		Medications: []models.Medication{{
			BaseModel: models.BaseModel{ID: "m1"},
			Name:      "Ibuprofen",
			StartDate: date(2024, 3, 2),
		}},
		Documents: []models.Document{{
			BaseModel: models.BaseModel{ID: "doc1"},
			Title:     "Scan",
			Date:      date(2024, 3, 3),
		}},
	}
	for _, e := range Build(rec, nil) {
		assert.Empty(t, e.Severity, "kind %s", e.Kind)
	}
}

func TestAppointmentProjection(t *testing.T) {
	apt := appointment("a1", "d1", date(2024, 3, 1))
	apt.Time = "10:15"
	apt.Findings = "mild inflammation"
	apt.DocumentIDs = []string{"doc1", "doc2"}

	rec := Records{
		Doctors:      []models.Doctor{{BaseModel: models.BaseModel{ID: "d1"}, Name: "Dr. Weber"}},
		Appointments: []models.Appointment{apt},
	}

	entries := Build(rec, nil)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Appointment: Dr. Weber", e.Title)
	assert.Equal(t, "Checkup - mild inflammation", e.Summary)
	assert.Equal(t, "10:15", e.Time)
	assert.Equal(t, "Dr. Weber", e.DoctorName)
	assert.Equal(t, "d1", e.Related.DoctorID)
	assert.Equal(t, "a1", e.Related.AppointmentID)
	assert.Equal(t, []string{"doc1", "doc2"}, e.Related.DocumentIDs)
}

func TestAppointmentProjectionUnknownDoctor(t *testing.T) {
	entries := Build(Records{
		Appointments: []models.Appointment{appointment("a1", "missing", date(2024, 3, 1))},
	}, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "Appointment: Unknown", entries[0].Title)
	assert.Empty(t, entries[0].DoctorName)
}

func TestMedicationProjection(t *testing.T) {
	rec := Records{
		Doctors: []models.Doctor{{BaseModel: models.BaseModel{ID: "d1"}, Name: "Dr. Weber"}},
		Medications: []models.Medication{{
			BaseModel:           models.BaseModel{ID: "m1"},
			Name:                "Ibuprofen",
			Dosage:              "400mg",
			Frequency:           "twice daily",
			Purpose:             "pain relief",
			PrescribingDoctorID: "d1",
			StartDate:           date(2024, 2, 20),
		}},
	}

	entries := Build(rec, nil)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Medication: Ibuprofen", e.Title)
	assert.Equal(t, "400mg, twice daily - pain relief", e.Summary)
	assert.Empty(t, e.Time)
	assert.Equal(t, "m1", e.Related.MedicationID)
	assert.Equal(t, "d1", e.Related.DoctorID)
	assert.Equal(t, "Dr. Weber", e.DoctorName)
}

func TestStatusProjection(t *testing.T) {
	s := statusEntry("s1", date(2024, 3, 2), 8)
	s.Symptoms = []string{"headache", "nausea"}
	s.DocumentIDs = []string{"doc1"}

	entries := Build(Records{Statuses: []models.StatusEntry{s}}, nil)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Status: Pain 8/10", e.Title)
	assert.Equal(t, "headache, nausea", e.Summary)
	assert.Equal(t, SeverityHigh, e.Severity)
	assert.Equal(t, []string{"doc1"}, e.Related.DocumentIDs)
	assert.Empty(t, e.Related.DoctorID)
}

func TestStatusSummaryFallsBackToContent(t *testing.T) {
	s := statusEntry("s1", date(2024, 3, 2), 3)
	s.Content = strings.Repeat("a", 150)

	entries := Build(Records{Statuses: []models.StatusEntry{s}}, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("a", 100), entries[0].Summary)
}

func TestDocumentProjection(t *testing.T) {
	rec := Records{
		Doctors: []models.Doctor{{BaseModel: models.BaseModel{ID: "d1"}, Name: "Dr. Weber"}},
		Documents: []models.Document{{
			BaseModel:     models.BaseModel{ID: "doc1"},
			Title:         "Blood work",
			Type:          "Lab",
			Date:          date(2024, 3, 3),
			DoctorID:      "d1",
			AppointmentID: "a1",
		}},
	}

	entries := Build(rec, nil)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Document: Blood work", e.Title)
	// No description: the type tag stands in.
	assert.Equal(t, "Lab", e.Summary)
	assert.Equal(t, "d1", e.Related.DoctorID)
	assert.Equal(t, "a1", e.Related.AppointmentID)
	assert.Equal(t, []string{"doc1"}, e.Related.DocumentIDs)
	assert.Equal(t, "Dr. Weber", e.DoctorName)
}

func TestBuildIsIdempotent(t *testing.T) {
	rec := Records{
		Doctors:      []models.Doctor{{BaseModel: models.BaseModel{ID: "d1"}, Name: "Dr. Weber"}},
		Appointments: []models.Appointment{appointment("a1", "d1", date(2024, 3, 1))},
		Statuses: []models.StatusEntry{
			statusEntry("s1", date(2024, 3, 1), 4),
			statusEntry("s2", date(2024, 3, 1), 6),
		},
	}
	filter := &Filter{DoctorID: "d1"}

	first := Build(rec, filter)
	second := Build(rec, filter)
	assert.Equal(t, first, second)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		clock string
		secs  int
		ok    bool
	}{
		{"09:30", 9*3600 + 30*60, true},
		{"14:00", 14 * 3600, true},
		{"00:00", 0, true},
		{"23:59:59", 23*3600 + 59*60 + 59, true},
		{"", 0, false},
		{"abc", 0, false},
		{"9", 0, false},
		{"12:xx", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:30:60", 0, false},
		{"12:30:15:01", 0, false},
		{"-1:30", 0, false},
	}
	for _, tc := range cases {
		secs, ok := parseClock(tc.clock)
		assert.Equal(t, tc.ok, ok, "clock %q", tc.clock)
		if tc.ok {
			assert.Equal(t, tc.secs, secs, "clock %q", tc.clock)
		}
	}
}
