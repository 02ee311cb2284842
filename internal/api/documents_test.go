package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barangay-backend/internal/config"
	"barangay-backend/internal/docrequest"
	"barangay-backend/internal/models"
	"barangay-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo is a minimal in-memory docrequest.Repository for handler tests.
type stubRepo struct {
	residents map[uuid.UUID]string
	docTypes  map[uuid.UUID]*models.DocumentType
	requests  map[uuid.UUID]*models.DocumentRequest
	payments  map[uuid.UUID]*models.Payment
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		residents: map[uuid.UUID]string{},
		docTypes:  map[uuid.UUID]*models.DocumentType{},
		requests:  map[uuid.UUID]*models.DocumentRequest{},
		payments:  map[uuid.UUID]*models.Payment{},
	}
}

func (r *stubRepo) ResidentExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.residents[id]
	return ok, nil
}

func (r *stubRepo) DocumentTypeByID(_ context.Context, id uuid.UUID) (*models.DocumentType, error) {
	return r.docTypes[id], nil
}

func (r *stubRepo) InsertWithPayment(_ context.Context, req *models.DocumentRequest, payment *models.Payment) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.RequestDate = now.Format("2006-01-02")
	r.requests[req.ID] = req
	r.payments[req.ID] = payment
	return nil
}

func (r *stubRepo) RequestByID(_ context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	return r.requests[id], nil
}

func (r *stubRepo) RequestByToken(_ context.Context, token string) (*models.DocumentRequest, error) {
	for _, req := range r.requests {
		if req.QRToken == token {
			return req, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to docrequest.Status) (*models.DocumentRequest, error) {
	req, ok := r.requests[id]
	if !ok || req.Status != from.String() {
		return nil, nil
	}
	req.Status = to.String()
	return req, nil
}

func (r *stubRepo) ReleaseByToken(_ context.Context, token string) (*models.DocumentRequest, error) {
	for _, req := range r.requests {
		if req.QRToken == token && req.Status == docrequest.StatusReady.String() {
			now := time.Now()
			req.Status = docrequest.StatusReleased.String()
			req.ReleasedAt = &now
			return req, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) DetailByID(_ context.Context, id uuid.UUID) (*models.DocumentRequestDetail, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	detail := &models.DocumentRequestDetail{DocumentRequest: *req}
	if dt, ok := r.docTypes[req.DocumentTypeID]; ok {
		detail.DocumentTypeName = dt.Name
		detail.DocumentFee = dt.Fee
	}
	detail.ResidentName = r.residents[req.ResidentID]
	detail.Payment = r.payments[id]
	return detail, nil
}

func (r *stubRepo) CurrentOfficials(_ context.Context) ([]models.Official, error) {
	return nil, nil
}

func (r *stubRepo) ResidentEmail(_ context.Context, _ uuid.UUID) (string, error) {
	return "", nil
}

// emptySources backs the notification service for handler tests.
type emptySources struct{}

func (emptySources) ProfileFor(_ context.Context, userID uuid.UUID) (notify.Profile, error) {
	return notify.Profile{UserID: userID}, nil
}
func (emptySources) RecentAnnouncements(context.Context, int) ([]models.Announcement, error) {
	return nil, nil
}
func (emptySources) RegisteredParticipations(context.Context, uuid.UUID, int) ([]models.Participation, error) {
	return nil, nil
}
func (emptySources) ProjectByID(context.Context, uuid.UUID) (*models.Project, error) { return nil, nil }
func (emptySources) ApplicationsByYouth(context.Context, uuid.UUID, int) ([]models.ScholarshipApplication, error) {
	return nil, nil
}
func (emptySources) ScholarshipByID(context.Context, uuid.UUID) (*models.Scholarship, error) {
	return nil, nil
}
func (emptySources) RecentActivities(context.Context, int) ([]models.Activity, error) {
	return nil, nil
}
func (emptySources) BlottersByComplainant(context.Context, uuid.UUID, int) ([]models.Blotter, error) {
	return nil, nil
}
func (emptySources) RequestsByResident(context.Context, uuid.UUID, int) ([]models.DocumentRequestDetail, error) {
	return nil, nil
}
func (emptySources) FeedbackByResident(context.Context, uuid.UUID, int) ([]models.Feedback, error) {
	return nil, nil
}
func (emptySources) RecentOfficials(context.Context, int) ([]models.Official, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, repo *stubRepo) (*gin.Engine, *docrequest.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.New()
	documents := docrequest.NewService(repo, nil, "http://localhost:8080", "Barangay San Isidro")
	notifications := notify.NewService(emptySources{})
	server := NewServer(nil, cfg, notifications, documents)

	router := gin.New()
	// Stand-in for the auth middleware: a staff session.
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.NewString())
		c.Set("user_role", "staff")
		c.Next()
	})

	router.GET("/notifications", server.GetNotifications)
	router.POST("/document-requests", server.CreateDocumentRequest)
	router.PUT("/document-requests/:id/accept", server.AcceptDocumentRequest)
	router.PUT("/document-requests/:id/ready", server.ReadyDocumentRequest)
	router.PUT("/document-requests/:id/decline", server.DeclineDocumentRequest)
	router.POST("/document-requests/release", server.ReleaseDocumentRequest)
	router.GET("/document-requests/:id/qr", server.GetDocumentRequestQR)

	return router, documents
}

func seedStub(repo *stubRepo) (uuid.UUID, uuid.UUID) {
	residentID := uuid.New()
	repo.residents[residentID] = "Juan Dela Cruz"
	docTypeID := uuid.New()
	repo.docTypes[docTypeID] = &models.DocumentType{ID: docTypeID, Name: "Barangay Clearance", Fee: 50}
	return residentID, docTypeID
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDocumentRequestEndpoint(t *testing.T) {
	repo := newStubRepo()
	residentID, docTypeID := seedStub(repo)
	router, _ := newTestRouter(t, repo)

	w := doJSON(router, http.MethodPost, "/document-requests", gin.H{
		"resident_id":      residentID,
		"document_type_id": docTypeID,
		"purpose":          "employment",
		"payment_method":   "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var detail models.DocumentRequestDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "pending", detail.Status)
	assert.Equal(t, "Barangay Clearance", detail.DocumentTypeName)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, 50.0, detail.Payment.Amount)
}

func TestCreateDocumentRequestValidationStatus(t *testing.T) {
	repo := newStubRepo()
	residentID, docTypeID := seedStub(repo)
	router, _ := newTestRouter(t, repo)

	w := doJSON(router, http.MethodPost, "/document-requests", gin.H{
		"resident_id":      residentID,
		"document_type_id": docTypeID,
		"purpose":          "travel",
		"payment_method":   "gcash",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "reference_no", body["field"])
}

func TestReleaseEndpointTaxonomy(t *testing.T) {
	repo := newStubRepo()
	residentID, docTypeID := seedStub(repo)
	router, documents := newTestRouter(t, repo)

	detail, err := documents.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "employment",
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)

	// Not ready yet: state conflict.
	w := doJSON(router, http.MethodPost, "/document-requests/release", gin.H{"token": detail.QRToken})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPut, fmt.Sprintf("/document-requests/%s/accept", detail.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/document-requests/%s/ready", detail.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The scanner may post the full QR URL.
	w = doJSON(router, http.MethodPost, "/document-requests/release", gin.H{
		"token": "http://localhost:8080/release/" + detail.QRToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Second scan of the same token conflicts.
	w = doJSON(router, http.MethodPost, "/document-requests/release", gin.H{"token": detail.QRToken})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown token is not found.
	w = doJSON(router, http.MethodPost, "/document-requests/release", gin.H{"token": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing token fails binding.
	w = doJSON(router, http.MethodPost, "/document-requests/release", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransitionEndpointsEnforceOrder(t *testing.T) {
	repo := newStubRepo()
	residentID, docTypeID := seedStub(repo)
	router, documents := newTestRouter(t, repo)

	detail, err := documents.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "employment",
		PaymentMethod:  "free",
	})
	require.NoError(t, err)

	// Ready before accept conflicts.
	w := doJSON(router, http.MethodPut, fmt.Sprintf("/document-requests/%s/ready", detail.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown id is not found.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/document-requests/%s/accept", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed id fails validation.
	w = doJSON(router, http.MethodPut, "/document-requests/not-a-uuid/accept", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Decline from pending succeeds, then accept conflicts.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/document-requests/%s/decline", detail.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/document-requests/%s/accept", detail.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQREndpointReturnsPNG(t *testing.T) {
	repo := newStubRepo()
	residentID, docTypeID := seedStub(repo)
	router, documents := newTestRouter(t, repo)

	detail, err := documents.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "employment",
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)

	w := doJSON(router, http.MethodGet, fmt.Sprintf("/document-requests/%s/qr", detail.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestNotificationsEndpointEmptyFeed(t *testing.T) {
	repo := newStubRepo()
	router, _ := newTestRouter(t, repo)

	w := doJSON(router, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed models.NotificationFeed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Equal(t, 0, feed.Count)
	assert.NotNil(t, feed.Notifications)
}
