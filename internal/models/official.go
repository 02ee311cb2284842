package models

import (
	"time"

	"github.com/google/uuid"
)

type Official struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Position  string     `json:"position" db:"position"`
	TermStart *time.Time `json:"term_start" db:"term_start"`
	TermEnd   *time.Time `json:"term_end" db:"term_end"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateOfficialRequest struct {
	Name      string     `json:"name" binding:"required"`
	Position  string     `json:"position" binding:"required"`
	TermStart *time.Time `json:"term_start"`
	TermEnd   *time.Time `json:"term_end"`
}

type UpdateOfficialRequest struct {
	Name      string     `json:"name" binding:"required"`
	Position  string     `json:"position" binding:"required"`
	TermStart *time.Time `json:"term_start"`
	TermEnd   *time.Time `json:"term_end"`
}
