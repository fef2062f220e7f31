// Package handler contains the Gin handlers for the complaint HTTP surface.
package handler

import (
	"go.uber.org/zap"

	"complaintgo/backend/internal/complaint"
)

// Handler holds the complaint service the routes delegate to.
type Handler struct {
	Service *complaint.Service
	Logger  *zap.Logger
}

func NewHandler(service *complaint.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Logger: logger}
}
