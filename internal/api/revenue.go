package api

import (
	"net/http"
	"time"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetRevenueSummary totals collected payments for released document
// requests, optionally bounded by from/to dates (YYYY-MM-DD).
func (s *Server) GetRevenueSummary(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN p.method = 'cash' THEN p.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN p.method = 'gcash' THEN p.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN p.method = 'free' THEN p.amount ELSE 0 END), 0),
			COALESCE(SUM(p.amount), 0),
			COUNT(*)
		FROM payments p
		JOIN document_requests dr ON p.document_request_id = dr.id
		WHERE dr.status = 'released'
	`
	args := []interface{}{}

	if from := c.Query("from"); from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		args = append(args, from)
		query += ` AND dr.released_at >= $1::date`
	}
	if to := c.Query("to"); to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		args = append(args, to)
		if len(args) == 2 {
			query += ` AND dr.released_at < $2::date + INTERVAL '1 day'`
		} else {
			query += ` AND dr.released_at < $1::date + INTERVAL '1 day'`
		}
	}

	var summary models.RevenueSummary
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&summary.TotalCash, &summary.TotalGCash, &summary.TotalFree, &summary.Total, &summary.Count,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
