package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack-server/internal/logger"
	"medtrack-server/internal/store"
	"medtrack-server/internal/timeline"
	"medtrack-server/internal/utils"
)

// dateLayout is the wire format for the timeline date bounds.
const dateLayout = "2006-01-02"

// TimelineHandler serves the merged timeline feed.
type TimelineHandler struct {
	Store *store.Store
}

// NewTimelineHandler creates a new TimelineHandler.
func NewTimelineHandler(s *store.Store) *TimelineHandler {
	return &TimelineHandler{Store: s}
}

// GetTimeline loads the five record collections and returns the
// merged, filtered, sorted feed. The collections are independent,
// so they load concurrently.
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	filter, err := parseTimelineFilter(c)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var rec timeline.Records
	errs := make([]error, 5)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		rec.Doctors, errs[0] = h.Store.GetAllDoctors(ctx)
	}()
	go func() {
		defer wg.Done()
		rec.Appointments, errs[1] = h.Store.GetAllAppointments(ctx)
	}()
	go func() {
		defer wg.Done()
		rec.Medications, errs[2] = h.Store.GetAllMedications(ctx)
	}()
	go func() {
		defer wg.Done()
		rec.Statuses, errs[3] = h.Store.GetAllStatusEntries(ctx)
	}()
	go func() {
		defer wg.Done()
		rec.Documents, errs[4] = h.Store.GetAllDocuments(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logger.WithField("error", err.Error()).Error("timeline: loading records failed")
			utils.InternalServerError(c, "Failed to load records")
			return
		}
	}

	utils.Success(c, "Timeline fetched successfully", timeline.Build(rec, filter))
}

// parseTimelineFilter maps the recognized query parameters onto a
// timeline filter. Unknown type tags pass through untouched; they
// match nothing downstream.
func parseTimelineFilter(c *gin.Context) (*timeline.Filter, error) {
	filter := &timeline.Filter{DoctorID: c.Query("doctorId")}

	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", v)
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", v)
		}
		filter.EndDate = &t
	}
	if v := c.Query("types"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Kinds = append(filter.Kinds, timeline.Kind(tag))
			}
		}
	}
	if v := c.Query("minPainLevel"); v != "" {
		level, err := parsePainLevel("minPainLevel", v)
		if err != nil {
			return nil, err
		}
		filter.MinPainLevel = &level
	}
	if v := c.Query("maxPainLevel"); v != "" {
		level, err := parsePainLevel("maxPainLevel", v)
		if err != nil {
			return nil, err
		}
		filter.MaxPainLevel = &level
	}

	return filter, nil
}

func parsePainLevel(name, value string) (int, error) {
	level, err := strconv.Atoi(value)
	if err != nil || level < 0 || level > 10 {
		return 0, fmt.Errorf("invalid %s %q, expected an integer between 0 and 10", name, value)
	}
	return level, nil
}
