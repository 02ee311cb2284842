package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is an SK (youth council) project. StartDate is stored as text for
// the same legacy reason as Activity.ActivityDate.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StartDate   string    `json:"start_date" db:"start_date"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=500"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	Status      string `json:"status"`
}

type Participation struct {
	ID               uuid.UUID `json:"id" db:"id"`
	YouthID          uuid.UUID `json:"youth_id" db:"youth_id"`
	ProjectID        uuid.UUID `json:"project_id" db:"project_id"`
	AttendanceStatus string    `json:"attendance_status" db:"attendance_status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type CreateParticipationRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
}
