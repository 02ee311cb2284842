package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Fee       float64   `json:"fee" db:"fee"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateDocumentTypeRequest struct {
	Name string  `json:"name" binding:"required"`
	Fee  float64 `json:"fee"`
}

type DocumentRequest struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	ResidentID     uuid.UUID  `json:"resident_id" db:"resident_id"`
	DocumentTypeID uuid.UUID  `json:"document_type_id" db:"document_type_id"`
	Purpose        string     `json:"purpose" db:"purpose"`
	Status         string     `json:"status" db:"status"`
	QRToken        string     `json:"qr_token" db:"qr_token"`
	RequestDate    string     `json:"request_date" db:"request_date"`
	ReleasedAt     *time.Time `json:"released_at" db:"released_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type Payment struct {
	ID                uuid.UUID `json:"id" db:"id"`
	DocumentRequestID uuid.UUID `json:"document_request_id" db:"document_request_id"`
	Method            string    `json:"method" db:"method"`
	Amount            float64   `json:"amount" db:"amount"`
	ReferenceNo       string    `json:"reference_no" db:"reference_no"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

type CreateDocumentRequestInput struct {
	ResidentID     uuid.UUID `json:"resident_id" binding:"required"`
	DocumentTypeID uuid.UUID `json:"document_type_id" binding:"required"`
	Purpose        string    `json:"purpose" binding:"required"`
	PaymentMethod  string    `json:"payment_method" binding:"required,oneof=cash gcash free"`
	Amount         float64   `json:"amount"`
	ReferenceNo    string    `json:"reference_no"`
}

type ReleaseRequest struct {
	Token string `json:"token" binding:"required"`
}

// DocumentRequestDetail joins the request with its payment and display names.
type DocumentRequestDetail struct {
	DocumentRequest
	DocumentTypeName string   `json:"document_type_name" db:"document_type_name"`
	DocumentFee      float64  `json:"document_fee" db:"document_fee"`
	ResidentName     string   `json:"resident_name" db:"resident_name"`
	Payment          *Payment `json:"payment,omitempty"`
}

// PrintableDocument is the read-side view for the certificate page.
type PrintableDocument struct {
	Request   DocumentRequestDetail `json:"request"`
	Officials []Official            `json:"officials"`
	QRURL     string                `json:"qr_url"`
	Barangay  string                `json:"barangay"`
}

type RevenueSummary struct {
	TotalCash  float64 `json:"total_cash"`
	TotalGCash float64 `json:"total_gcash"`
	TotalFree  float64 `json:"total_free"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
}
