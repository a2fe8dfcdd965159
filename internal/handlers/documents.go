package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack-server/internal/models"
	"medtrack-server/internal/store"
	"medtrack-server/internal/utils"
)

// DocumentHandler handles document metadata requests. The files
// themselves live outside the database.
type DocumentHandler struct {
	Store *store.Store
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(s *store.Store) *DocumentHandler {
	return &DocumentHandler{Store: s}
}

// DocumentRequest represents the request body for creating or
// updating a document.
type DocumentRequest struct {
	Type          string    `json:"type" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	FilePath      string    `json:"filePath" binding:"required"`
	FileType      string    `json:"fileType"`
	FileSize      int64     `json:"fileSize"`
	Date          time.Time `json:"date" binding:"required"`
	DoctorID      string    `json:"doctorId"`
	AppointmentID string    `json:"appointmentId"`
	Tags          []string  `json:"tags"`
}

func (r *DocumentRequest) apply(doc *models.Document) {
	doc.Type = r.Type
	doc.Title = r.Title
	doc.Description = r.Description
	doc.FilePath = r.FilePath
	doc.FileType = r.FileType
	doc.FileSize = r.FileSize
	doc.Date = r.Date
	doc.DoctorID = r.DoctorID
	doc.AppointmentID = r.AppointmentID
	doc.Tags = r.Tags
}

// ListDocuments handles fetching all documents, newest first.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	documents, err := h.Store.GetAllDocuments(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch documents")
		return
	}
	utils.Success(c, "Documents fetched successfully", documents)
}

// GetDocumentByID handles fetching a single document.
func (h *DocumentHandler) GetDocumentByID(c *gin.Context) {
	document, err := h.Store.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Document not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch document")
		}
		return
	}
	utils.Success(c, "Document fetched successfully", document)
}

// CreateDocument handles creating a new document.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req DocumentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var document models.Document
	req.apply(&document)

	if err := h.Store.CreateDocument(c.Request.Context(), &document); err != nil {
		utils.InternalServerError(c, "Failed to create document")
		return
	}
	utils.Created(c, "Document created successfully", document)
}

// UpdateDocument handles replacing an existing document.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req DocumentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	document, err := h.Store.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Document not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch document")
		}
		return
	}

	req.apply(document)
	if err := h.Store.UpdateDocument(c.Request.Context(), document); err != nil {
		utils.InternalServerError(c, "Failed to update document")
		return
	}
	utils.Success(c, "Document updated successfully", document)
}

// DeleteDocument handles deleting a document.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.Store.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Document not found")
		} else {
			utils.InternalServerError(c, "Failed to delete document")
		}
		return
	}
	utils.Success(c, "Document deleted successfully", nil)
}
