package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack-server/internal/models"
	"medtrack-server/internal/store"
	"medtrack-server/internal/utils"
)

// StatusHandler handles daily health-status entries.
type StatusHandler struct {
	Store *store.Store
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(s *store.Store) *StatusHandler {
	return &StatusHandler{Store: s}
}

// StatusEntryRequest represents the request body for creating or
// updating a status entry. PainLevel is bounded to [0,10].
type StatusEntryRequest struct {
	Date             time.Time `json:"date" binding:"required"`
	Time             string    `json:"time"`
	PainLevel        *int      `json:"painLevel" binding:"required"`
	Symptoms         []string  `json:"symptoms"`
	AffectedAreas    []string  `json:"affectedAreas"`
	GeneralCondition string    `json:"generalCondition"`
	Sleep            string    `json:"sleep"`
	Appetite         string    `json:"appetite"`
	Mood             string    `json:"mood"`
	Notes            string    `json:"notes"`
	Content          string    `json:"content"`
	MedicationsTaken []string  `json:"medicationsTaken"`
	DocumentIDs      []string  `json:"documentIds"`
}

func (r *StatusEntryRequest) apply(status *models.StatusEntry) {
	status.Date = r.Date
	status.Time = r.Time
	status.PainLevel = *r.PainLevel
	status.Symptoms = r.Symptoms
	status.AffectedAreas = r.AffectedAreas
	status.GeneralCondition = r.GeneralCondition
	status.Sleep = r.Sleep
	status.Appetite = r.Appetite
	status.Mood = r.Mood
	status.Notes = r.Notes
	status.Content = r.Content
	status.MedicationsTaken = r.MedicationsTaken
	status.DocumentIDs = r.DocumentIDs
}

func (r *StatusEntryRequest) validPainLevel() bool {
	return r.PainLevel != nil && *r.PainLevel >= 0 && *r.PainLevel <= 10
}

// ListStatusEntries handles fetching all status entries, newest first.
func (h *StatusHandler) ListStatusEntries(c *gin.Context) {
	statuses, err := h.Store.GetAllStatusEntries(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch status entries")
		return
	}
	utils.Success(c, "Status entries fetched successfully", statuses)
}

// GetStatusEntryByID handles fetching a single status entry.
func (h *StatusHandler) GetStatusEntryByID(c *gin.Context) {
	status, err := h.Store.GetStatusEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Status entry not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch status entry")
		}
		return
	}
	utils.Success(c, "Status entry fetched successfully", status)
}

// CreateStatusEntry handles creating a new status entry.
func (h *StatusHandler) CreateStatusEntry(c *gin.Context) {
	var req StatusEntryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !req.validPainLevel() {
		utils.BadRequest(c, "painLevel must be between 0 and 10")
		return
	}

	var status models.StatusEntry
	req.apply(&status)

	if err := h.Store.CreateStatusEntry(c.Request.Context(), &status); err != nil {
		utils.InternalServerError(c, "Failed to create status entry")
		return
	}
	utils.Created(c, "Status entry created successfully", status)
}

// UpdateStatusEntry handles replacing an existing status entry.
func (h *StatusHandler) UpdateStatusEntry(c *gin.Context) {
	var req StatusEntryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !req.validPainLevel() {
		utils.BadRequest(c, "painLevel must be between 0 and 10")
		return
	}

	status, err := h.Store.GetStatusEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Status entry not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch status entry")
		}
		return
	}

	req.apply(status)
	if err := h.Store.UpdateStatusEntry(c.Request.Context(), status); err != nil {
		utils.InternalServerError(c, "Failed to update status entry")
		return
	}
	utils.Success(c, "Status entry updated successfully", status)
}

// DeleteStatusEntry handles deleting a status entry.
func (h *StatusHandler) DeleteStatusEntry(c *gin.Context) {
	if err := h.Store.DeleteStatusEntry(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Status entry not found")
		} else {
			utils.InternalServerError(c, "Failed to delete status entry")
		}
		return
	}
	utils.Success(c, "Status entry deleted successfully", nil)
}
