package models

import (
	"time"

	"github.com/google/uuid"
)

// Blotter records an incident report. The complainant is a proper resident
// reference, never a free-text name.
type Blotter struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	ComplainantResidentID *uuid.UUID `json:"complainant_resident_id" db:"complainant_resident_id"`
	RespondentName        string     `json:"respondent_name" db:"respondent_name"`
	Details               string     `json:"details" db:"details"`
	Status                string     `json:"status" db:"status"`
	IncidentDate          *time.Time `json:"incident_date" db:"incident_date"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateBlotterRequest struct {
	ComplainantResidentID *uuid.UUID `json:"complainant_resident_id"`
	RespondentName        string     `json:"respondent_name"`
	Details               string     `json:"details" binding:"required"`
	Status                string     `json:"status"`
	IncidentDate          *time.Time `json:"incident_date"`
}

type UpdateBlotterRequest struct {
	RespondentName string     `json:"respondent_name"`
	Details        string     `json:"details" binding:"required"`
	Status         string     `json:"status"`
	IncidentDate   *time.Time `json:"incident_date"`
}
