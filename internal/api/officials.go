package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Official Handlers
func (s *Server) GetOfficials(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT id, name, position, term_start, term_end, created_at, updated_at
		FROM officials
		ORDER BY position ASC, name ASC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch officials"})
		return
	}
	defer rows.Close()

	var officials []models.Official
	for rows.Next() {
		var o models.Official
		if err := rows.Scan(&o.ID, &o.Name, &o.Position, &o.TermStart, &o.TermEnd, &o.CreatedAt, &o.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan official"})
			return
		}
		officials = append(officials, o)
	}

	c.JSON(http.StatusOK, officials)
}

func (s *Server) CreateOfficial(c *gin.Context) {
	var req models.CreateOfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	official := models.Official{
		Name:      req.Name,
		Position:  req.Position,
		TermStart: req.TermStart,
		TermEnd:   req.TermEnd,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO officials (name, position, term_start, term_end)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, position, term_start, term_end, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, official.Name, official.Position, official.TermStart, official.TermEnd).Scan(
		&official.ID, &official.Name, &official.Position, &official.TermStart, &official.TermEnd,
		&official.CreatedAt, &official.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create official"})
		return
	}

	c.JSON(http.StatusCreated, official)
}

func (s *Server) UpdateOfficial(c *gin.Context) {
	officialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid official ID"})
		return
	}

	var req models.UpdateOfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	query := `
		UPDATE officials
		SET name = $1, position = $2, term_start = $3, term_end = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, name, position, term_start, term_end, created_at, updated_at
	`

	var official models.Official
	err = s.db.QueryRow(ctx, query, req.Name, req.Position, req.TermStart, req.TermEnd, officialID).Scan(
		&official.ID, &official.Name, &official.Position, &official.TermStart, &official.TermEnd,
		&official.CreatedAt, &official.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update official"})
		return
	}

	c.JSON(http.StatusOK, official)
}

func (s *Server) DeleteOfficial(c *gin.Context) {
	officialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid official ID"})
		return
	}

	ctx := c.Request.Context()
	_, err = s.db.Exec(ctx, `DELETE FROM officials WHERE id = $1`, officialID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete official"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Official deleted successfully"})
}
