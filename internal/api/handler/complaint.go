package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"complaintgo/backend/internal/complaint"
	"complaintgo/backend/internal/models"
)

// SendComplaint accepts one complaint submission and runs the intake
// pipeline. Exactly one outcome is reported per call: 200 on full success,
// 400 on validation failure, 500 on persistence or notification failure.
func (h *Handler) SendComplaint(c *gin.Context) {
	var sub complaint.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	_, err := h.Service.HandleComplaint(sub)
	if err != nil {
		var validationErr *complaint.ValidationError
		var notificationErr *complaint.NotificationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		case errors.As(err, &notificationErr):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email: " + notificationErr.Err.Error()})
		default:
			h.Logger.Error("complaint intake failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint submitted and saved successfully!"})
}

// GetComplaints returns every stored complaint with the timestamp rendered
// in the fixed pattern.
func (h *Handler) GetComplaints(c *gin.Context) {
	complaints, err := h.Service.ListComplaints()
	if err != nil {
		h.Logger.Error("complaint listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred: " + err.Error()})
		return
	}

	result := make([]models.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		result = append(result, complaints[i].Response())
	}
	c.JSON(http.StatusOK, result)
}
