package models

import (
	"time"

	"gorm.io/gorm"

	"complaintgo/backend/internal/config"
)

// Complaint represents a persisted consumer submission. Records are created
// only through the intake pipeline and are never updated or deleted.
type Complaint struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Email           string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone           string    `gorm:"type:varchar(15);not null" json:"phone"`
	Product         string    `gorm:"type:varchar(200);not null" json:"product"`
	Issue           string    `gorm:"type:text;not null" json:"issue"`
	SummarizedIssue string    `gorm:"type:text" json:"summarized_issue"`
	Timestamp       time.Time `gorm:"not null" json:"timestamp"`
}

// BeforeCreate is a GORM hook that stamps the creation time in UTC.
// An already-set timestamp is preserved so the field is written exactly once.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	return
}

// ComplaintResponse is the wire representation returned by the listing
// endpoint, with the timestamp rendered as a fixed-pattern string.
type ComplaintResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Product         string `json:"product"`
	Issue           string `json:"issue"`
	SummarizedIssue string `json:"summarized_issue"`
	Timestamp       string `json:"timestamp"`
}

// Response converts a stored complaint into its wire representation.
func (c *Complaint) Response() ComplaintResponse {
	return ComplaintResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Product:         c.Product,
		Issue:           c.Issue,
		SummarizedIssue: c.SummarizedIssue,
		Timestamp:       c.Timestamp.Format(config.TimestampLayout),
	}
}

// ComplaintEvent is the payload published to Redis after a complaint has been
// durably saved. Consumers get the id and enough context to look it up.
type ComplaintEvent struct {
	ComplaintID uint   `json:"complaint_id"`
	Name        string `json:"name"`
	Product     string `json:"product"`
	Timestamp   string `json:"timestamp"`
}
