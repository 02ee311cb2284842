package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Activity Handlers
func (s *Server) GetActivities(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT id, title, description, activity_date, location, created_at, updated_at
		FROM activities
		ORDER BY activity_date DESC, created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.ActivityDate, &a.Location, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan activity"})
			return
		}
		activities = append(activities, a)
	}

	c.JSON(http.StatusOK, activities)
}

func (s *Server) CreateActivity(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.Activity{
		Title:        req.Title,
		Description:  req.Description,
		ActivityDate: req.ActivityDate,
		Location:     req.Location,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO activities (title, description, activity_date, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, activity_date, location, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, activity.Title, activity.Description, activity.ActivityDate, activity.Location).Scan(
		&activity.ID, &activity.Title, &activity.Description, &activity.ActivityDate, &activity.Location,
		&activity.CreatedAt, &activity.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (s *Server) UpdateActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	query := `
		UPDATE activities
		SET title = $1, description = $2, activity_date = $3, location = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, title, description, activity_date, location, created_at, updated_at
	`

	var activity models.Activity
	err = s.db.QueryRow(ctx, query, req.Title, req.Description, req.ActivityDate, req.Location, activityID).Scan(
		&activity.ID, &activity.Title, &activity.Description, &activity.ActivityDate, &activity.Location,
		&activity.CreatedAt, &activity.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (s *Server) DeleteActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, activityID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
