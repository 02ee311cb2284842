package docrequest

import (
	"context"
	"sync"
	"testing"
	"time"

	"barangay-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository. Status updates take the mutex around
// the read-check-write so the compare-and-swap semantics of the SQL layer are
// reproduced faithfully.
type fakeRepo struct {
	mu        sync.Mutex
	residents map[uuid.UUID]string
	docTypes  map[uuid.UUID]*models.DocumentType
	requests  map[uuid.UUID]*models.DocumentRequest
	payments  map[uuid.UUID]*models.Payment
	officials []models.Official
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		residents: map[uuid.UUID]string{},
		docTypes:  map[uuid.UUID]*models.DocumentType{},
		requests:  map[uuid.UUID]*models.DocumentRequest{},
		payments:  map[uuid.UUID]*models.Payment{},
	}
}

func (r *fakeRepo) ResidentExists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.residents[id]
	return ok, nil
}

func (r *fakeRepo) DocumentTypeByID(_ context.Context, id uuid.UUID) (*models.DocumentType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.docTypes[id], nil
}

func (r *fakeRepo) InsertWithPayment(_ context.Context, req *models.DocumentRequest, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.RequestDate = now.Format("2006-01-02")
	copied := *req
	r.requests[req.ID] = &copied
	paid := *payment
	r.payments[req.ID] = &paid
	return nil
}

func (r *fakeRepo) RequestByID(_ context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *req
	return &copied, nil
}

func (r *fakeRepo) RequestByToken(_ context.Context, token string) (*models.DocumentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.QRToken == token {
			copied := *req
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to Status) (*models.DocumentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != from.String() {
		return nil, nil
	}
	req.Status = to.String()
	req.UpdatedAt = time.Now()
	copied := *req
	return &copied, nil
}

func (r *fakeRepo) ReleaseByToken(_ context.Context, token string) (*models.DocumentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.QRToken == token && req.Status == StatusReady.String() {
			now := time.Now()
			req.Status = StatusReleased.String()
			req.ReleasedAt = &now
			req.UpdatedAt = now
			copied := *req
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) DetailByID(_ context.Context, id uuid.UUID) (*models.DocumentRequestDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	if payment, ok := r.payments[id]; ok {
		copied := *payment
		detail.Payment = &copied
	}
	return detail, nil
}

func (r *fakeRepo) CurrentOfficials(_ context.Context) ([]models.Official, error) {
	return r.officials, nil
}

func (r *fakeRepo) ResidentEmail(_ context.Context, _ uuid.UUID) (string, error) {
	return "", nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, nil, "https://portal.example.com", "Barangay San Isidro")
}

func seedResidentAndType(repo *fakeRepo) (uuid.UUID, uuid.UUID) {
	residentID := uuid.New()
	repo.residents[residentID] = "Juan Dela Cruz"
	docTypeID := uuid.New()
	repo.docTypes[docTypeID] = &models.DocumentType{ID: docTypeID, Name: "Barangay Clearance", Fee: 50}
	return residentID, docTypeID
}

func TestCreateValidation(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.CreateDocumentRequestInput
		field string
	}{
		{
			"blank purpose",
			models.CreateDocumentRequestInput{ResidentID: residentID, DocumentTypeID: docTypeID, Purpose: "   ", PaymentMethod: "cash"},
			"purpose",
		},
		{
			"bad payment method",
			models.CreateDocumentRequestInput{ResidentID: residentID, DocumentTypeID: docTypeID, Purpose: "employment", PaymentMethod: "check"},
			"payment_method",
		},
		{
			"gcash without reference",
			models.CreateDocumentRequestInput{ResidentID: residentID, DocumentTypeID: docTypeID, Purpose: "employment", PaymentMethod: "gcash"},
			"reference_no",
		},
		{
			"unknown resident",
			models.CreateDocumentRequestInput{ResidentID: uuid.New(), DocumentTypeID: docTypeID, Purpose: "employment", PaymentMethod: "cash"},
			"resident_id",
		},
		{
			"unknown document type",
			models.CreateDocumentRequestInput{ResidentID: residentID, DocumentTypeID: uuid.New(), Purpose: "employment", PaymentMethod: "cash"},
			"document_type_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreateDefaultsAmountToFee(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)

	detail, err := svc.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "employment",
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, 50.0, detail.Payment.Amount)
	assert.Equal(t, StatusPending.String(), detail.Status)
	assert.NotEmpty(t, detail.QRToken)
}

func TestCreateFreeZeroesAmount(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)

	detail, err := svc.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "indigency certificate",
		PaymentMethod:  "free",
		Amount:         500,
	})
	require.NoError(t, err)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, 0.0, detail.Payment.Amount)
}

func TestCreateGCashKeepsReference(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)

	detail, err := svc.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "travel",
		PaymentMethod:  "gcash",
		ReferenceNo:    " GC-12345 ",
	})
	require.NoError(t, err)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, "GC-12345", detail.Payment.ReferenceNo)
}

func createRequest(t *testing.T, svc *Service, residentID, docTypeID uuid.UUID) *models.DocumentRequestDetail {
	t.Helper()
	detail, err := svc.Create(context.Background(), models.CreateDocumentRequestInput{
		ResidentID:     residentID,
		DocumentTypeID: docTypeID,
		Purpose:        "employment",
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)
	return detail
}

func TestLifecycleHappyPath(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)
	ctx := context.Background()

	detail := createRequest(t, svc, residentID, docTypeID)

	accepted, err := svc.Accept(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOnProcess.String(), accepted.Status)

	ready, err := svc.MarkReady(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusReady.String(), ready.Status)

	released, err := svc.Release(ctx, detail.QRToken)
	require.NoError(t, err)
	assert.Equal(t, StatusReleased.String(), released.Status)
	require.NotNil(t, released.ReleasedAt)
}

func TestTransitionConflicts(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)
	ctx := context.Background()

	detail := createRequest(t, svc, residentID, docTypeID)

	// Cannot mark ready before accepting.
	_, err := svc.MarkReady(ctx, detail.ID)
	assert.ErrorIs(t, err, ErrStateConflict)

	_, err = svc.Accept(ctx, detail.ID)
	require.NoError(t, err)

	// Accepting twice conflicts.
	_, err = svc.Accept(ctx, detail.ID)
	assert.ErrorIs(t, err, ErrStateConflict)

	// Decline is only allowed from pending.
	_, err = svc.Decline(ctx, detail.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestDeclineTerminal(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)
	ctx := context.Background()

	detail := createRequest(t, svc, residentID, docTypeID)

	declined, err := svc.Decline(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDeclined.String(), declined.Status)

	_, err = svc.Decline(ctx, detail.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
	_, err = svc.Accept(ctx, detail.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestTransitionUnknownID(t *testing.T) {
	repo := newFakeRepo()
	seedResidentAndType(repo)
	svc := newTestService(repo)

	_, err := svc.Accept(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReleaseUnknownToken(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Release(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Release(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReleaseBeforeReadyConflicts(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)
	ctx := context.Background()

	detail := createRequest(t, svc, residentID, docTypeID)

	_, err := svc.Release(ctx, detail.QRToken)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestConcurrentReleaseExactlyOneWins(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	svc := newTestService(repo)
	ctx := context.Background()

	detail := createRequest(t, svc, residentID, docTypeID)
	_, err := svc.Accept(ctx, detail.ID)
	require.NoError(t, err)
	_, err = svc.MarkReady(ctx, detail.ID)
	require.NoError(t, err)

	const scans = 8
	results := make(chan error, scans)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < scans; i++ {
		go func() {
			start.Wait()
			_, err := svc.Release(ctx, detail.QRToken)
			results <- err
		}()
	}
	start.Done()

	var wins, conflicts int
	for i := 0; i < scans; i++ {
		err := <-results
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrStateConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, scans-1, conflicts)
}

func TestTokenFromScan(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"full url", "https://portal.example.com/release/abc-123", "abc-123"},
		{"trailing slash", "https://portal.example.com/release/abc-123/", "abc-123"},
		{"bare token", "abc-123", "abc-123"},
		{"padded token", "  abc-123  ", "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenFromScan(tt.payload))
		})
	}
}

func TestPrintable(t *testing.T) {
	repo := newFakeRepo()
	residentID, docTypeID := seedResidentAndType(repo)
	repo.officials = []models.Official{
		{ID: uuid.New(), Name: "Maria Santos", Position: "Barangay Captain"},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	detail := createRequest(t, svc, residentID, docTypeID)

	printable, err := svc.Printable(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, "Barangay San Isidro", printable.Barangay)
	assert.Equal(t, "Juan Dela Cruz", printable.Request.ResidentName)
	assert.Len(t, printable.Officials, 1)
	assert.Equal(t, "https://portal.example.com/release/"+detail.QRToken, printable.QRURL)

	_, err = svc.Printable(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
