package models

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ResidentID   uuid.UUID `json:"resident_id" db:"resident_id"`
	FeedbackType string    `json:"feedback_type" db:"feedback_type"`
	Message      string    `json:"message" db:"message"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateFeedbackRequest struct {
	FeedbackType string `json:"feedback_type" binding:"required"`
	Message      string `json:"message" binding:"required"`
}
