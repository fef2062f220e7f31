// Package complaint provides the core logic for handling consumer
// complaints: the intake pipeline (validate, summarize, persist, notify)
// and the listing read-through.
package complaint

import (
	"go.uber.org/zap"

	"complaintgo/backend/internal/models"
	"complaintgo/backend/internal/notifier"
	"complaintgo/backend/internal/storage"
	"complaintgo/backend/internal/summarizer"
)

// Alerter is the optional secondary notification channel. A nil Alerter
// disables it.
type Alerter interface {
	Alert(complaint *models.Complaint) error
}

// Submission is one complaint payload as received from the client.
// All five fields are required.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Product string `json:"product"`
	Issue   string `json:"issue"`
}

// Service handles the business logic for complaints.
type Service struct {
	Storage    storage.Storage
	Summarizer summarizer.Summarizer
	Notifier   notifier.Notifier
	Alerter    Alerter
	Logger     *zap.Logger
}

// NewService creates a new complaint service. Alerter may be nil.
func NewService(s storage.Storage, sum summarizer.Summarizer, n notifier.Notifier, a Alerter, logger *zap.Logger) *Service {
	return &Service{
		Storage:    s,
		Summarizer: sum,
		Notifier:   n,
		Alerter:    a,
		Logger:     logger,
	}
}

// HandleComplaint runs the intake pipeline for one submission and returns
// the stored record. Validation is checked before any side effect; a
// persistence failure stops the pipeline before notification; a
// notification failure leaves the record persisted and is reported as a
// NotificationError.
func (s *Service) HandleComplaint(sub Submission) (*models.Complaint, error) {
	if err := validate(sub); err != nil {
		return nil, err
	}

	// Summarization has no failure mode: on any trouble the client hands
	// back the deterministic truncation and the pipeline continues.
	summary := s.Summarizer.Summarize(sub.Issue)
	if summary.Source == summarizer.SourceFallback {
		s.Logger.Info("using fallback summary", zap.String("product", sub.Product))
	}

	complaint := &models.Complaint{
		Name:            sub.Name,
		Email:           sub.Email,
		Phone:           sub.Phone,
		Product:         sub.Product,
		Issue:           sub.Issue,
		SummarizedIssue: summary.Value,
	}
	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	s.fanOut(complaint)

	if err := s.Notifier.Notify(complaint); err != nil {
		// The record stays: partial success is observable, not hidden.
		s.Logger.Error("notification failed for persisted complaint",
			zap.Uint("complaint_id", complaint.ID), zap.Error(err))
		return complaint, &NotificationError{Err: err}
	}

	s.Logger.Info("complaint processed",
		zap.Uint("complaint_id", complaint.ID),
		zap.String("summary_source", string(summary.Source)))
	return complaint, nil
}

// ListComplaints returns every stored complaint.
func (s *Service) ListComplaints() ([]models.Complaint, error) {
	complaints, err := s.Storage.ListComplaints()
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return complaints, nil
}

// fanOut pushes the saved complaint to the best-effort side channels:
// the Redis event stream and the Telegram support chat. Failures here are
// logged and never change the request outcome.
func (s *Service) fanOut(complaint *models.Complaint) {
	event := models.ComplaintEvent{
		ComplaintID: complaint.ID,
		Name:        complaint.Name,
		Product:     complaint.Product,
		Timestamp:   complaint.Response().Timestamp,
	}
	if err := s.Storage.PublishComplaintCreated(event); err != nil {
		s.Logger.Warn("complaint event publish failed",
			zap.Uint("complaint_id", complaint.ID), zap.Error(err))
	}

	if s.Alerter != nil {
		if err := s.Alerter.Alert(complaint); err != nil {
			s.Logger.Warn("telegram alert failed",
				zap.Uint("complaint_id", complaint.ID), zap.Error(err))
		}
	}
}

func validate(sub Submission) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", sub.Name},
		{"email", sub.Email},
		{"phone", sub.Phone},
		{"product", sub.Product},
		{"issue", sub.Issue},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
