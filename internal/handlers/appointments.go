package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack-server/internal/models"
	"medtrack-server/internal/store"
	"medtrack-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store *store.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *store.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: s}
}

// AppointmentRequest represents the request body for creating or
// updating an appointment.
type AppointmentRequest struct {
	Date            time.Time  `json:"date" binding:"required"`
	Time            string     `json:"time"`
	DoctorID        string     `json:"doctorId" binding:"required"`
	Type            string     `json:"type"`
	Reason          string     `json:"reason" binding:"required"`
	Findings        string     `json:"findings"`
	Diagnosis       string     `json:"diagnosis"`
	Recommendations []string   `json:"recommendations"`
	Prescriptions   []string   `json:"prescriptions"`
	DocumentIDs     []string   `json:"documentIds"`
	Notes           string     `json:"notes"`
	FollowUpDate    *time.Time `json:"followUpDate"`
}

func (r *AppointmentRequest) apply(apt *models.Appointment) {
	apt.Date = r.Date
	apt.Time = r.Time
	apt.DoctorID = r.DoctorID
	apt.Type = r.Type
	apt.Reason = r.Reason
	apt.Findings = r.Findings
	apt.Diagnosis = r.Diagnosis
	apt.Recommendations = r.Recommendations
	apt.Prescriptions = r.Prescriptions
	apt.DocumentIDs = r.DocumentIDs
	apt.Notes = r.Notes
	apt.FollowUpDate = r.FollowUpDate
}

// ListAppointments handles fetching all appointments, newest first.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.Store.GetAllAppointments(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.Store.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointment")
		}
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// CreateAppointment handles creating a new appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// The doctor reference must resolve; a dangling id would only
	// surface later as "Unknown" on the timeline.
	if _, err := h.Store.GetDoctorByID(c.Request.Context(), req.DoctorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.BadRequest(c, "Unknown doctorId")
		} else {
			utils.InternalServerError(c, "Failed to verify doctor")
		}
		return
	}

	var appointment models.Appointment
	req.apply(&appointment)

	if err := h.Store.CreateAppointment(c.Request.Context(), &appointment); err != nil {
		utils.InternalServerError(c, "Failed to create appointment")
		return
	}
	utils.Created(c, "Appointment created successfully", appointment)
}

// UpdateAppointment handles replacing an existing appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Store.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointment")
		}
		return
	}

	req.apply(appointment)
	if err := h.Store.UpdateAppointment(c.Request.Context(), appointment); err != nil {
		utils.InternalServerError(c, "Failed to update appointment")
		return
	}
	utils.Success(c, "Appointment updated successfully", appointment)
}

// DeleteAppointment handles deleting an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Store.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to delete appointment")
		}
		return
	}
	utils.Success(c, "Appointment deleted successfully", nil)
}
