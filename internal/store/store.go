// Package store is the persistence layer: plain gorm CRUD per
// entity, no business logic. List accessors return newest first by
// each entity's anchor date so list views need no extra sorting.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medtrack-server/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store provides access to all persisted records.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an initialized database connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// === DOCTORS ===

func (s *Store) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).Order("name asc").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	return doctors, nil
}

func (s *Store) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.WithContext(ctx).First(&doctor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching doctor %s: %w", id, err)
	}
	return &doctor, nil
}

func (s *Store) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if err := s.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("creating doctor: %w", err)
	}
	return nil
}

func (s *Store) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if err := s.db.WithContext(ctx).Save(doctor).Error; err != nil {
		return fmt.Errorf("updating doctor %s: %w", doctor.ID, err)
	}
	return nil
}

func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Doctor{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting doctor %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// === APPOINTMENTS ===

func (s *Store) GetAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.WithContext(ctx).Order("date desc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}

func (s *Store) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (s *Store) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	if err := s.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("creating appointment: %w", err)
	}
	return nil
}

func (s *Store) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	if err := s.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return fmt.Errorf("updating appointment %s: %w", appointment.ID, err)
	}
	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting appointment %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// === MEDICATIONS ===

func (s *Store) GetAllMedications(ctx context.Context) ([]models.Medication, error) {
	var medications []models.Medication
	if err := s.db.WithContext(ctx).Order("start_date desc").Find(&medications).Error; err != nil {
		return nil, fmt.Errorf("listing medications: %w", err)
	}
	return medications, nil
}

func (s *Store) GetMedicationByID(ctx context.Context, id string) (*models.Medication, error) {
	var medication models.Medication
	if err := s.db.WithContext(ctx).First(&medication, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching medication %s: %w", id, err)
	}
	return &medication, nil
}

func (s *Store) CreateMedication(ctx context.Context, medication *models.Medication) error {
	if err := s.db.WithContext(ctx).Create(medication).Error; err != nil {
		return fmt.Errorf("creating medication: %w", err)
	}
	return nil
}

func (s *Store) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	if err := s.db.WithContext(ctx).Save(medication).Error; err != nil {
		return fmt.Errorf("updating medication %s: %w", medication.ID, err)
	}
	return nil
}

func (s *Store) DeleteMedication(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Medication{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting medication %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// === STATUS ENTRIES ===

func (s *Store) GetAllStatusEntries(ctx context.Context) ([]models.StatusEntry, error) {
	var statuses []models.StatusEntry
	if err := s.db.WithContext(ctx).Order("date desc").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("listing status entries: %w", err)
	}
	return statuses, nil
}

func (s *Store) GetStatusEntryByID(ctx context.Context, id string) (*models.StatusEntry, error) {
	var status models.StatusEntry
	if err := s.db.WithContext(ctx).First(&status, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching status entry %s: %w", id, err)
	}
	return &status, nil
}

func (s *Store) CreateStatusEntry(ctx context.Context, status *models.StatusEntry) error {
	if err := s.db.WithContext(ctx).Create(status).Error; err != nil {
		return fmt.Errorf("creating status entry: %w", err)
	}
	return nil
}

func (s *Store) UpdateStatusEntry(ctx context.Context, status *models.StatusEntry) error {
	if err := s.db.WithContext(ctx).Save(status).Error; err != nil {
		return fmt.Errorf("updating status entry %s: %w", status.ID, err)
	}
	return nil
}

func (s *Store) DeleteStatusEntry(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.StatusEntry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting status entry %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// === DOCUMENTS ===

func (s *Store) GetAllDocuments(ctx context.Context) ([]models.Document, error) {
	var documents []models.Document
	if err := s.db.WithContext(ctx).Order("date desc").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return documents, nil
}

func (s *Store) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	var document models.Document
	if err := s.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching document %s: %w", id, err)
	}
	return &document, nil
}

func (s *Store) CreateDocument(ctx context.Context, document *models.Document) error {
	if err := s.db.WithContext(ctx).Create(document).Error; err != nil {
		return fmt.Errorf("creating document: %w", err)
	}
	return nil
}

func (s *Store) UpdateDocument(ctx context.Context, document *models.Document) error {
	if err := s.db.WithContext(ctx).Save(document).Error; err != nil {
		return fmt.Errorf("updating document %s: %w", document.ID, err)
	}
	return nil
}

func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting document %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
