package complaint_test

import (
	"github.com/stretchr/testify/mock"

	"complaintgo/backend/internal/models"
	"complaintgo/backend/internal/summarizer"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) ListComplaints() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) PublishComplaintCreated(event models.ComplaintEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockSummarizer is a mock implementation of the summarizer.Summarizer
// interface.
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(text string) summarizer.Summary {
	args := m.Called(text)
	return args.Get(0).(summarizer.Summary)
}

// MockNotifier is a mock implementation of the notifier.Notifier interface.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

// MockAlerter is a mock implementation of the complaint.Alerter interface.
type MockAlerter struct {
	mock.Mock
}

func (m *MockAlerter) Alert(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}
