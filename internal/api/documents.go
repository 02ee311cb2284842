package api

import (
	"errors"
	"net/http"

	"barangay-backend/internal/docrequest"
	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Document Type Handlers
func (s *Server) GetDocumentTypes(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := s.db.Query(ctx, `SELECT id, name, fee, created_at, updated_at FROM document_types ORDER BY name ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document types"})
		return
	}
	defer rows.Close()

	var types []models.DocumentType
	for rows.Next() {
		var dt models.DocumentType
		if err := rows.Scan(&dt.ID, &dt.Name, &dt.Fee, &dt.CreatedAt, &dt.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan document type"})
			return
		}
		types = append(types, dt)
	}

	c.JSON(http.StatusOK, types)
}

func (s *Server) CreateDocumentType(c *gin.Context) {
	var req models.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docType := models.DocumentType{Name: req.Name, Fee: req.Fee}

	ctx := c.Request.Context()
	query := `
		INSERT INTO document_types (name, fee)
		VALUES ($1, $2)
		RETURNING id, name, fee, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, docType.Name, docType.Fee).Scan(
		&docType.ID, &docType.Name, &docType.Fee, &docType.CreatedAt, &docType.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document type"})
		return
	}

	c.JSON(http.StatusCreated, docType)
}

// Document Request Handlers
func (s *Server) CreateDocumentRequest(c *gin.Context) {
	var input models.CreateDocumentRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Residents may only request for themselves; staff can file for anyone.
	if role, _ := c.Get("user_role"); role == "resident" {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		residentID, hasResident, err := s.residentIDForUser(c, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve resident profile"})
			return
		}
		if !hasResident {
			c.JSON(http.StatusForbidden, gin.H{"error": "A resident profile is required to request documents"})
			return
		}
		input.ResidentID = residentID
	}

	detail, err := s.documents.Create(c.Request.Context(), input)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (s *Server) GetDocumentRequests(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT dr.id, dr.resident_id, dr.document_type_id, dr.purpose, dr.status, dr.qr_token,
			   dr.request_date, dr.released_at, dr.created_at, dr.updated_at,
			   COALESCE(dt.name, 'N/A'), COALESCE(dt.fee, 0),
			   COALESCE(res.first_name || ' ' || res.last_name, 'N/A')
		FROM document_requests dr
		LEFT JOIN document_types dt ON dr.document_type_id = dt.id
		LEFT JOIN residents res ON dr.resident_id = res.id
	`
	args := []interface{}{}

	// Residents see their own requests only.
	if role, _ := c.Get("user_role"); role == "resident" {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		residentID, hasResident, err := s.residentIDForUser(c, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve resident profile"})
			return
		}
		if !hasResident {
			c.JSON(http.StatusOK, []models.DocumentRequestDetail{})
			return
		}
		query += ` WHERE dr.resident_id = $1`
		args = append(args, residentID)
	}

	query += ` ORDER BY dr.created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document requests"})
		return
	}
	defer rows.Close()

	var requests []models.DocumentRequestDetail
	for rows.Next() {
		var d models.DocumentRequestDetail
		err := rows.Scan(
			&d.ID, &d.ResidentID, &d.DocumentTypeID, &d.Purpose, &d.Status, &d.QRToken,
			&d.RequestDate, &d.ReleasedAt, &d.CreatedAt, &d.UpdatedAt,
			&d.DocumentTypeName, &d.DocumentFee, &d.ResidentName,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan document request"})
			return
		}
		requests = append(requests, d)
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) AcceptDocumentRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	request, err := s.documents.Accept(c.Request.Context(), requestID)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (s *Server) ReadyDocumentRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	request, err := s.documents.MarkReady(c.Request.Context(), requestID)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (s *Server) DeclineDocumentRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	request, err := s.documents.Decline(c.Request.Context(), requestID)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ReleaseDocumentRequest redeems a scanned QR payload. The scanner posts
// either the raw token or the full encoded URL; the last path segment is the
// token either way.
func (s *Server) ReleaseDocumentRequest(c *gin.Context) {
	var req models.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := docrequest.TokenFromScan(req.Token)

	detail, err := s.documents.Release(c.Request.Context(), token)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document released successfully",
		"request": detail,
	})
}

func (s *Server) GetPrintableDocument(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	printable, err := s.documents.Printable(c.Request.Context(), requestID)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	c.JSON(http.StatusOK, printable)
}

// GetDocumentRequestQR renders the release QR code as a PNG.
func (s *Server) GetDocumentRequestQR(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	printable, err := s.documents.Printable(c.Request.Context(), requestID)
	if err != nil {
		s.renderDocumentError(c, err)
		return
	}

	png, err := qrcode.Encode(printable.QRURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// renderDocumentError maps service errors onto the response taxonomy:
// validation 400, state conflict 409, not found 404.
func (s *Server) renderDocumentError(c *gin.Context, err error) {
	var validationErr *docrequest.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, docrequest.ErrStateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Request already processed or not in the required state"})
	case errors.Is(err, docrequest.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document request not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process document request"})
	}
}
