package models

import (
	"time"

	"github.com/google/uuid"
)

type Zone struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateZoneRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type Household struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	HouseholdNo    string     `json:"household_no" db:"household_no"`
	ZoneID         *uuid.UUID `json:"zone_id" db:"zone_id"`
	HeadResidentID *uuid.UUID `json:"head_resident_id" db:"head_resident_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateHouseholdRequest struct {
	HouseholdNo    string     `json:"household_no" binding:"required"`
	ZoneID         *uuid.UUID `json:"zone_id"`
	HeadResidentID *uuid.UUID `json:"head_resident_id"`
}

type HouseholdWithZone struct {
	Household
	ZoneName string `json:"zone_name" db:"zone_name"`
}
