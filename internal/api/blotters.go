package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Blotter Handlers
func (s *Server) GetBlotters(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT id, complainant_resident_id, respondent_name, details, status, incident_date, created_at, updated_at
		FROM blotters
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blotters"})
		return
	}
	defer rows.Close()

	var blotters []models.Blotter
	for rows.Next() {
		var b models.Blotter
		err := rows.Scan(
			&b.ID, &b.ComplainantResidentID, &b.RespondentName, &b.Details, &b.Status,
			&b.IncidentDate, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan blotter"})
			return
		}
		blotters = append(blotters, b)
	}

	c.JSON(http.StatusOK, blotters)
}

func (s *Server) CreateBlotter(c *gin.Context) {
	var req models.CreateBlotterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Residents filing their own complaint are recorded by profile reference,
	// not by name.
	complainantID := req.ComplainantResidentID
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
			c.JSON(http.StatusForbidden, gin.H{"error": "A resident profile is required to file a blotter"})
			return
		}
		complainantID = &residentID
	}

	status := req.Status
	if status == "" {
		status = "open"
	}

	blotter := models.Blotter{
		ComplainantResidentID: complainantID,
		RespondentName:        req.RespondentName,
		Details:               req.Details,
		Status:                status,
		IncidentDate:          req.IncidentDate,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO blotters (complainant_resident_id, respondent_name, details, status, incident_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, complainant_resident_id, respondent_name, details, status, incident_date, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query,
		blotter.ComplainantResidentID, blotter.RespondentName, blotter.Details, blotter.Status, blotter.IncidentDate,
	).Scan(
		&blotter.ID, &blotter.ComplainantResidentID, &blotter.RespondentName, &blotter.Details,
		&blotter.Status, &blotter.IncidentDate, &blotter.CreatedAt, &blotter.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blotter"})
		return
	}

	c.JSON(http.StatusCreated, blotter)
}

func (s *Server) UpdateBlotter(c *gin.Context) {
	blotterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blotter ID"})
		return
	}

	var req models.UpdateBlotterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	query := `
		UPDATE blotters
		SET respondent_name = $1, details = $2, status = $3, incident_date = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, complainant_resident_id, respondent_name, details, status, incident_date, created_at, updated_at
	`

	var blotter models.Blotter
	err = s.db.QueryRow(ctx, query, req.RespondentName, req.Details, req.Status, req.IncidentDate, blotterID).Scan(
		&blotter.ID, &blotter.ComplainantResidentID, &blotter.RespondentName, &blotter.Details,
		&blotter.Status, &blotter.IncidentDate, &blotter.CreatedAt, &blotter.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blotter"})
		return
	}

	c.JSON(http.StatusOK, blotter)
}

func (s *Server) DeleteBlotter(c *gin.Context) {
	blotterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blotter ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM blotters WHERE id = $1`, blotterID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blotter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blotter deleted successfully"})
}
