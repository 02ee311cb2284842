package models

import (
	"time"

	"github.com/google/uuid"
)

type Resident struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      *uuid.UUID `json:"user_id" db:"user_id"`
	HouseholdID *uuid.UUID `json:"household_id" db:"household_id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	LastName    string     `json:"last_name" db:"last_name"`
	BirthDate   *time.Time `json:"birth_date" db:"birth_date"`
	Gender      string     `json:"gender" db:"gender"`
	CivilStatus string     `json:"civil_status" db:"civil_status"`
	ContactNo   string     `json:"contact_no" db:"contact_no"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateResidentRequest struct {
	UserID      *uuid.UUID `json:"user_id"`
	HouseholdID *uuid.UUID `json:"household_id"`
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	BirthDate   *time.Time `json:"birth_date"`
	Gender      string     `json:"gender"`
	CivilStatus string     `json:"civil_status"`
	ContactNo   string     `json:"contact_no"`
}

type UpdateResidentRequest struct {
	HouseholdID *uuid.UUID `json:"household_id"`
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	BirthDate   *time.Time `json:"birth_date"`
	Gender      string     `json:"gender"`
	CivilStatus string     `json:"civil_status"`
	ContactNo   string     `json:"contact_no"`
}

func (r *Resident) FullName() string {
	return r.FirstName + " " + r.LastName
}

type YouthProfile struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	ResidentID *uuid.UUID `json:"resident_id" db:"resident_id"`
	BirthDate  *time.Time `json:"birth_date" db:"birth_date"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateYouthProfileRequest struct {
	UserID     uuid.UUID  `json:"user_id" binding:"required"`
	ResidentID *uuid.UUID `json:"resident_id"`
	BirthDate  *time.Time `json:"birth_date"`
}
