package models

import (
	"time"

	"github.com/google/uuid"
)

type Hotline struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Number    string    `json:"number" db:"number"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateHotlineRequest struct {
	Name     string `json:"name" binding:"required"`
	Number   string `json:"number" binding:"required"`
	Category string `json:"category"`
}
