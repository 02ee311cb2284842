package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a barangay-wide event. ActivityDate is stored as text because
// legacy records carry pre-formatted strings alongside ISO dates.
type Activity struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	ActivityDate string    `json:"activity_date" db:"activity_date"`
	Location     string    `json:"location" db:"location"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateActivityRequest struct {
	Title        string `json:"title" binding:"required,max=500"`
	Description  string `json:"description"`
	ActivityDate string `json:"activity_date"`
	Location     string `json:"location"`
}

type UpdateActivityRequest struct {
	Title        string `json:"title" binding:"required,max=500"`
	Description  string `json:"description"`
	ActivityDate string `json:"activity_date"`
	Location     string `json:"location"`
}
