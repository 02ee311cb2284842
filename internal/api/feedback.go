package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Feedback Handlers
func (s *Server) CreateFeedback(c *gin.Context) {
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
		c.JSON(http.StatusForbidden, gin.H{"error": "A resident profile is required to send feedback"})
		return
	}

	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback := models.Feedback{
		ResidentID:   residentID,
		FeedbackType: req.FeedbackType,
		Message:      req.Message,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO feedback (resident_id, feedback_type, message)
		VALUES ($1, $2, $3)
		RETURNING id, resident_id, feedback_type, message, created_at, updated_at
	`

	err = s.db.QueryRow(ctx, query, feedback.ResidentID, feedback.FeedbackType, feedback.Message).Scan(
		&feedback.ID, &feedback.ResidentID, &feedback.FeedbackType, &feedback.Message,
		&feedback.CreatedAt, &feedback.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (s *Server) GetFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT id, resident_id, feedback_type, message, created_at, updated_at
		FROM feedback
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	defer rows.Close()

	var feedbacks []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.ResidentID, &f.FeedbackType, &f.Message, &f.CreatedAt, &f.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan feedback"})
			return
		}
		feedbacks = append(feedbacks, f)
	}

	c.JSON(http.StatusOK, feedbacks)
}
