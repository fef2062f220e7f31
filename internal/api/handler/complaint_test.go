package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"complaintgo/backend/internal/api/handler"
	"complaintgo/backend/internal/complaint"
	"complaintgo/backend/internal/models"
	"complaintgo/backend/internal/summarizer"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) SaveComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *mockStorage) ListComplaints() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *mockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *mockStorage) PublishComplaintCreated(event models.ComplaintEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(text string) summarizer.Summary {
	args := m.Called(text)
	return args.Get(0).(summarizer.Summary)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func newTestRouter(s *mockStorage, sum *mockSummarizer, n *mockNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := complaint.NewService(s, sum, n, nil, zap.NewNop())
	h := handler.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/send-complaint", h.SendComplaint)
	r.GET("/complaints", h.GetComplaints)
	return r
}

const validBody = `{"name":"A","email":"a@x.com","phone":"123","product":"Widget","issue":"It broke."}`

// TestSendComplaint_Success verifies the 200 response on full pipeline
// success.
func TestSendComplaint_Success(t *testing.T) {
	// Arrange
	storageMock := new(mockStorage)
	summarizerMock := new(mockSummarizer)
	notifierMock := new(mockNotifier)
	router := newTestRouter(storageMock, summarizerMock, notifierMock)

	summarizerMock.On("Summarize", "It broke.").
		Return(summarizer.Summary{Value: "Broke.", Source: summarizer.SourceDirect}).Once()
	storageMock.On("SaveComplaint", mock.Anything).Return(nil).Once()
	storageMock.On("PublishComplaintCreated", mock.Anything).Return(nil).Once()
	notifierMock.On("Notify", mock.Anything).Return(nil).Once()

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-complaint", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Complaint submitted and saved successfully!"}`, w.Body.String())
}

// TestSendComplaint_MissingField verifies a 400 response and that no record
// is created.
func TestSendComplaint_MissingField(t *testing.T) {
	// Arrange
	storageMock := new(mockStorage)
	router := newTestRouter(storageMock, new(mockSummarizer), new(mockNotifier))

	body := `{"name":"A","email":"a@x.com","phone":"123","issue":"It broke."}` // product omitted

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-complaint", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "All fields are required."}`, w.Body.String())
	storageMock.AssertNotCalled(t, "SaveComplaint", mock.Anything)
}

// TestSendComplaint_MalformedBody verifies non-JSON input gets a 400.
func TestSendComplaint_MalformedBody(t *testing.T) {
	router := newTestRouter(new(mockStorage), new(mockSummarizer), new(mockNotifier))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-complaint", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestSendComplaint_PersistenceFailure verifies the generic 500 path.
func TestSendComplaint_PersistenceFailure(t *testing.T) {
	// Arrange
	storageMock := new(mockStorage)
	summarizerMock := new(mockSummarizer)
	notifierMock := new(mockNotifier)
	router := newTestRouter(storageMock, summarizerMock, notifierMock)

	summarizerMock.On("Summarize", mock.Anything).
		Return(summarizer.Summary{Value: "Broke.", Source: summarizer.SourceDirect}).Once()
	storageMock.On("SaveComplaint", mock.Anything).Return(errors.New("db down")).Once()

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-complaint", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
	notifierMock.AssertNotCalled(t, "Notify", mock.Anything)
}

// TestSendComplaint_NotificationFailure verifies email-send failures are
// distinguished in the 500 message text.
func TestSendComplaint_NotificationFailure(t *testing.T) {
	// Arrange
	storageMock := new(mockStorage)
	summarizerMock := new(mockSummarizer)
	notifierMock := new(mockNotifier)
	router := newTestRouter(storageMock, summarizerMock, notifierMock)

	summarizerMock.On("Summarize", mock.Anything).
		Return(summarizer.Summary{Value: "Broke.", Source: summarizer.SourceDirect}).Once()
	storageMock.On("SaveComplaint", mock.Anything).Return(nil).Once()
	storageMock.On("PublishComplaintCreated", mock.Anything).Return(nil).Once()
	notifierMock.On("Notify", mock.Anything).Return(errors.New("connection rejected")).Once()

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-complaint", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send email:")
}

// TestGetComplaints verifies the listing response shape and timestamp
// format.
func TestGetComplaints(t *testing.T) {
	// Arrange
	storageMock := new(mockStorage)
	router := newTestRouter(storageMock, new(mockSummarizer), new(mockNotifier))

	stored := []models.Complaint{
		{
			ID: 1, Name: "A", Email: "a@x.com", Phone: "123", Product: "Widget",
			Issue: "It broke.", SummarizedIssue: "Broke.",
			Timestamp: time.Date(2024, 3, 15, 9, 5, 7, 0, time.UTC),
		},
	}
	storageMock.On("ListComplaints").Return(stored, nil).Once()

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/complaints", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var result []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result, 1)
	assert.Equal(t, float64(1), result[0]["id"])
	assert.Equal(t, "A", result[0]["name"])
	assert.Equal(t, "Broke.", result[0]["summarized_issue"])
	assert.Equal(t, "2024-03-15 09:05:07", result[0]["timestamp"])
}

// TestGetComplaints_EmptyStore verifies an empty listing is a JSON array,
// not null.
func TestGetComplaints_EmptyStore(t *testing.T) {
	storageMock := new(mockStorage)
	router := newTestRouter(storageMock, new(mockSummarizer), new(mockNotifier))
	storageMock.On("ListComplaints").Return([]models.Complaint{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/complaints", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// TestGetComplaints_ReadFailure verifies the 500 path on a store read
// failure.
func TestGetComplaints_ReadFailure(t *testing.T) {
	storageMock := new(mockStorage)
	router := newTestRouter(storageMock, new(mockSummarizer), new(mockNotifier))
	storageMock.On("ListComplaints").Return(nil, errors.New("read failed")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/complaints", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
