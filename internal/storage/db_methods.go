package storage

import (
	"encoding/json"

	"complaintgo/backend/internal/config"
	"complaintgo/backend/internal/models"
)

// SaveComplaint persists a new complaint in PostgreSQL. GORM assigns the
// auto-increment id and the BeforeCreate hook stamps the UTC timestamp;
// the single-row insert is the atomicity unit.
func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	return s.DB.Create(complaint).Error
}

// ListComplaints returns every persisted complaint in insertion order.
func (s *Service) ListComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Order("id").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetComplaintByID fetches a single complaint by its primary key.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// PublishComplaintCreated publishes a complaint.created event to Redis
// Pub/Sub so downstream consumers can react without polling the table.
func (s *Service) PublishComplaintCreated(event models.ComplaintEvent) error {
	if s.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, config.ComplaintCreatedChannel, payload).Err()
}
