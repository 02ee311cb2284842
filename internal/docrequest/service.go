package docrequest

import (
	"context"
	"strings"

	"barangay-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Repository is the persistence surface for document requests. UpdateStatus
// and ReleaseByToken are compare-and-swap operations: they match on the
// current state and return nil (no error) when nothing matched, so two
// concurrent transitions cannot both succeed.
type Repository interface {
	ResidentExists(ctx context.Context, id uuid.UUID) (bool, error)
	DocumentTypeByID(ctx context.Context, id uuid.UUID) (*models.DocumentType, error)
	InsertWithPayment(ctx context.Context, req *models.DocumentRequest, payment *models.Payment) error
	RequestByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error)
	RequestByToken(ctx context.Context, token string) (*models.DocumentRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (*models.DocumentRequest, error)
	ReleaseByToken(ctx context.Context, token string) (*models.DocumentRequest, error)
	DetailByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequestDetail, error)
	CurrentOfficials(ctx context.Context) ([]models.Official, error)
	ResidentEmail(ctx context.Context, residentID uuid.UUID) (string, error)
}

// Notifier sends the pick-up notice. Implementations are best effort.
type Notifier interface {
	SendPickupNotice(toEmail, documentName string) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	baseURL  string
	barangay string
}

func NewService(repo Repository, notifier Notifier, baseURL, barangay string) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
		barangay: barangay,
	}
}

// Create validates the input, then inserts the request and its payment in one
// transaction. New requests always start at pending with a fresh QR token.
func (s *Service) Create(ctx context.Context, input models.CreateDocumentRequestInput) (*models.DocumentRequestDetail, error) {
	if strings.TrimSpace(input.Purpose) == "" {
		return nil, validationErr("purpose", "purpose is required")
	}
	if !ValidMethod(input.PaymentMethod) {
		return nil, validationErr("payment_method", "payment method must be cash, gcash or free")
	}
	if input.PaymentMethod == MethodGCash && strings.TrimSpace(input.ReferenceNo) == "" {
		return nil, validationErr("reference_no", "reference number is required for gcash payments")
	}

	exists, err := s.repo.ResidentExists(ctx, input.ResidentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, validationErr("resident_id", "resident not found")
	}

	docType, err := s.repo.DocumentTypeByID(ctx, input.DocumentTypeID)
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, validationErr("document_type_id", "document type not found")
	}

	amount := input.Amount
	if input.PaymentMethod == MethodFree {
		// Free requests carry no fee no matter what the client sent.
		amount = 0
	} else if amount == 0 {
		amount = docType.Fee
	}

	request := &models.DocumentRequest{
		ID:             uuid.New(),
		ResidentID:     input.ResidentID,
		DocumentTypeID: input.DocumentTypeID,
		Purpose:        strings.TrimSpace(input.Purpose),
		Status:         StatusPending.String(),
		QRToken:        uuid.NewString(),
	}
	payment := &models.Payment{
		ID:                uuid.New(),
		DocumentRequestID: request.ID,
		Method:            input.PaymentMethod,
		Amount:            amount,
		ReferenceNo:       strings.TrimSpace(input.ReferenceNo),
	}

	if err := s.repo.InsertWithPayment(ctx, request, payment); err != nil {
		return nil, err
	}

	return s.repo.DetailByID(ctx, request.ID)
}

// Accept moves a pending request into processing.
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	return s.transition(ctx, id, StatusPending, StatusOnProcess)
}

// MarkReady flags a request as ready for pick-up and emails the resident when
// an account address exists.
func (s *Service) MarkReady(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	request, err := s.transition(ctx, id, StatusOnProcess, StatusReady)
	if err != nil {
		return nil, err
	}

	go s.sendPickupNotice(request)

	return request, nil
}

// Decline terminates a pending request.
func (s *Service) Decline(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	return s.transition(ctx, id, StatusPending, StatusDeclined)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, from, to Status) (*models.DocumentRequest, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		return updated, nil
	}

	// Nothing matched: distinguish wrong-state from unknown id.
	existing, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return nil, ErrStateConflict
}

// Release redeems a QR token scanned at the release station. The underlying
// update matches on both token and the ready state, so of two concurrent
// scans exactly one wins; the other gets a state-conflict error.
func (s *Service) Release(ctx context.Context, token string) (*models.DocumentRequestDetail, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNotFound
	}

	released, err := s.repo.ReleaseByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if released == nil {
		existing, err := s.repo.RequestByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		return nil, ErrStateConflict
	}

	return s.repo.DetailByID(ctx, released.ID)
}

// TokenFromScan extracts the release token from a scanned QR payload, which
// is a URL whose final path segment is the token. A bare token passes
// through unchanged.
func TokenFromScan(payload string) string {
	payload = strings.TrimSpace(strings.TrimRight(payload, "/"))
	if i := strings.LastIndexByte(payload, '/'); i >= 0 {
		return payload[i+1:]
	}
	return payload
}

// Printable assembles the certificate view: the request, the officials
// roster and the QR URL. Pure read, no state change.
func (s *Service) Printable(ctx context.Context, id uuid.UUID) (*models.PrintableDocument, error) {
	detail, err := s.repo.DetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrNotFound
	}

	officials, err := s.repo.CurrentOfficials(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PrintableDocument{
		Request:   *detail,
		Officials: officials,
		QRURL:     s.ReleaseURL(detail.QRToken),
		Barangay:  s.barangay,
	}, nil
}

// ReleaseURL is the payload encoded into the QR code.
func (s *Service) ReleaseURL(token string) string {
	return s.baseURL + "/release/" + token
}

func (s *Service) sendPickupNotice(request *models.DocumentRequest) {
	if s.notifier == nil {
		return
	}

	ctx := context.Background()
	email, err := s.repo.ResidentEmail(ctx, request.ResidentID)
	if err != nil || email == "" {
		return
	}

	detail, err := s.repo.DetailByID(ctx, request.ID)
	if err != nil || detail == nil {
		return
	}

	if err := s.notifier.SendPickupNotice(email, detail.DocumentTypeName); err != nil {
		logrus.Warnf("pickup notice for request %s failed: %v", request.ID, err)
	}
}
