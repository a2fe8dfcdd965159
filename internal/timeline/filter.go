package timeline

import "time"

// Filter restricts the entries Build returns. All criteria are
// optional and conjunctive. Date bounds are inclusive and compared
// at day precision. Kinds unknown to the timeline simply never
// match. The doctor criterion only excludes entries that carry a
// doctor reference and don't match; the pain criteria only apply
// to kinds that have a pain level.
type Filter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	Kinds        []Kind
	DoctorID     string
	MinPainLevel *int
	MaxPainLevel *int
}

func (f *Filter) matches(e *Entry) bool {
	if f == nil {
		return true
	}
	if f.StartDate != nil && e.Date.Before(dateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && e.Date.After(dateOnly(*f.EndDate)) {
		return false
	}
	if len(f.Kinds) > 0 && !containsKind(f.Kinds, e.Kind) {
		return false
	}
	t := traits[e.Kind]
	if f.DoctorID != "" && t.hasDoctor && e.Related.DoctorID != "" && e.Related.DoctorID != f.DoctorID {
		return false
	}
	if t.hasPainLevel && e.Status != nil {
		if f.MinPainLevel != nil && e.Status.PainLevel < *f.MinPainLevel {
			return false
		}
		if f.MaxPainLevel != nil && e.Status.PainLevel > *f.MaxPainLevel {
			return false
		}
	}
	return true
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
