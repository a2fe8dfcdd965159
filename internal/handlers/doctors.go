package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack-server/internal/models"
	"medtrack-server/internal/store"
	"medtrack-server/internal/utils"
)

// DoctorHandler handles doctor related requests.
type DoctorHandler struct {
	Store *store.Store
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(s *store.Store) *DoctorHandler {
	return &DoctorHandler{Store: s}
}

// DoctorRequest represents the request body for creating or updating a doctor.
type DoctorRequest struct {
	Name       string     `json:"name" binding:"required"`
	Specialty  string     `json:"specialty" binding:"required"`
	Clinic     string     `json:"clinic"`
	Address    string     `json:"address"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Notes      string     `json:"notes"`
	FirstVisit *time.Time `json:"firstVisit"`
	IsActive   *bool      `json:"isActive"`
}

func (r *DoctorRequest) apply(doctor *models.Doctor) {
	doctor.Name = r.Name
	doctor.Specialty = r.Specialty
	doctor.Clinic = r.Clinic
	doctor.Address = r.Address
	doctor.Phone = r.Phone
	doctor.Email = r.Email
	doctor.Notes = r.Notes
	doctor.FirstVisit = r.FirstVisit
	doctor.IsActive = r.IsActive == nil || *r.IsActive
}

// ListDoctors handles fetching all doctors.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Store.GetAllDoctors(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors")
		return
	}
	utils.Success(c, "Doctors fetched successfully", doctors)
}

// GetDoctorByID handles fetching a single doctor.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctor, err := h.Store.GetDoctorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch doctor")
		}
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// CreateDoctor handles creating a new doctor.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctor models.Doctor
	req.apply(&doctor)

	if err := h.Store.CreateDoctor(c.Request.Context(), &doctor); err != nil {
		utils.InternalServerError(c, "Failed to create doctor")
		return
	}
	utils.Created(c, "Doctor created successfully", doctor)
}

// UpdateDoctor handles replacing an existing doctor.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.Store.GetDoctorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch doctor")
		}
		return
	}

	req.apply(doctor)
	if err := h.Store.UpdateDoctor(c.Request.Context(), doctor); err != nil {
		utils.InternalServerError(c, "Failed to update doctor")
		return
	}
	utils.Success(c, "Doctor updated successfully", doctor)
}

// DeleteDoctor handles deleting a doctor.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	if err := h.Store.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to delete doctor")
		}
		return
	}
	utils.Success(c, "Doctor deleted successfully", nil)
}
