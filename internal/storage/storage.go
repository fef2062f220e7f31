// Package storage provides the durable record of submitted complaints and
// the Redis fan-out channel for new-complaint events.
package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"complaintgo/backend/internal/models"
)

type Storage interface {
	SaveComplaint(complaint *models.Complaint) error
	ListComplaints() ([]models.Complaint, error)
	GetComplaintByID(id uint) (*models.Complaint, error)

	PublishComplaintCreated(event models.ComplaintEvent) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor. The Redis client may be nil; event
// publishing is then a no-op (the admin CLI runs without Redis).
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
