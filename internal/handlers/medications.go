package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack-server/internal/models"
	"medtrack-server/internal/store"
	"medtrack-server/internal/utils"
)

// MedicationHandler handles medication related requests.
type MedicationHandler struct {
	Store *store.Store
}

// NewMedicationHandler creates a new MedicationHandler.
func NewMedicationHandler(s *store.Store) *MedicationHandler {
	return &MedicationHandler{Store: s}
}

// MedicationRequest represents the request body for creating or
// updating a medication.
type MedicationRequest struct {
	Name                string     `json:"name" binding:"required"`
	GenericName         string     `json:"genericName"`
	Dosage              string     `json:"dosage" binding:"required"`
	Frequency           string     `json:"frequency" binding:"required"`
	Route               string     `json:"route"`
	PrescribingDoctorID string     `json:"prescribingDoctorId"`
	AppointmentID       string     `json:"appointmentId"`
	StartDate           time.Time  `json:"startDate" binding:"required"`
	EndDate             *time.Time `json:"endDate"`
	IsActive            *bool      `json:"isActive"`
	Purpose             string     `json:"purpose"`
	Effects             string     `json:"effects"`
	SideEffects         []string   `json:"sideEffects"`
	Notes               string     `json:"notes"`
}

func (r *MedicationRequest) apply(med *models.Medication) {
	med.Name = r.Name
	med.GenericName = r.GenericName
	med.Dosage = r.Dosage
	med.Frequency = r.Frequency
	med.Route = r.Route
	if med.Route == "" {
		med.Route = "oral"
	}
	med.PrescribingDoctorID = r.PrescribingDoctorID
	med.AppointmentID = r.AppointmentID
	med.StartDate = r.StartDate
	med.EndDate = r.EndDate
	med.IsActive = r.IsActive == nil || *r.IsActive
	med.Purpose = r.Purpose
	med.Effects = r.Effects
	med.SideEffects = r.SideEffects
	med.Notes = r.Notes
}

// ListMedications handles fetching all medications, newest first.
func (h *MedicationHandler) ListMedications(c *gin.Context) {
	medications, err := h.Store.GetAllMedications(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch medications")
		return
	}
	utils.Success(c, "Medications fetched successfully", medications)
}

// GetMedicationByID handles fetching a single medication.
func (h *MedicationHandler) GetMedicationByID(c *gin.Context) {
	medication, err := h.Store.GetMedicationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Medication not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch medication")
		}
		return
	}
	utils.Success(c, "Medication fetched successfully", medication)
}

// CreateMedication handles creating a new medication.
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req MedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var medication models.Medication
	req.apply(&medication)

	if err := h.Store.CreateMedication(c.Request.Context(), &medication); err != nil {
		utils.InternalServerError(c, "Failed to create medication")
		return
	}
	utils.Created(c, "Medication created successfully", medication)
}

// UpdateMedication handles replacing an existing medication.
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	var req MedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	medication, err := h.Store.GetMedicationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Medication not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch medication")
		}
		return
	}

	req.apply(medication)
	if err := h.Store.UpdateMedication(c.Request.Context(), medication); err != nil {
		utils.InternalServerError(c, "Failed to update medication")
		return
	}
	utils.Success(c, "Medication updated successfully", medication)
}

// DeleteMedication handles deleting a medication.
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	if err := h.Store.DeleteMedication(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Medication not found")
		} else {
			utils.InternalServerError(c, "Failed to delete medication")
		}
		return
	}
	utils.Success(c, "Medication deleted successfully", nil)
}
