package models

import (
	"time"

	"github.com/google/uuid"
)

type Scholarship struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Slots       int       `json:"slots" db:"slots"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateScholarshipRequest struct {
	Title       string `json:"title" binding:"required,max=500"`
	Description string `json:"description"`
	Slots       int    `json:"slots"`
}

type ScholarshipApplication struct {
	ID            uuid.UUID `json:"id" db:"id"`
	YouthID       uuid.UUID `json:"youth_id" db:"youth_id"`
	ScholarshipID uuid.UUID `json:"scholarship_id" db:"scholarship_id"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type CreateScholarshipApplicationRequest struct {
	ScholarshipID uuid.UUID `json:"scholarship_id" binding:"required"`
}
