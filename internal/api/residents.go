package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Resident Handlers
func (s *Server) GetResidents(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT id, user_id, household_id, first_name, last_name, birth_date, gender, civil_status, contact_no, created_at, updated_at
		FROM residents
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch residents"})
		return
	}
	defer rows.Close()

	var residents []models.Resident
	for rows.Next() {
		var r models.Resident
		err := rows.Scan(
			&r.ID, &r.UserID, &r.HouseholdID, &r.FirstName, &r.LastName,
			&r.BirthDate, &r.Gender, &r.CivilStatus, &r.ContactNo, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan resident"})
			return
		}
		residents = append(residents, r)
	}

	c.JSON(http.StatusOK, residents)
}

func (s *Server) CreateResident(c *gin.Context) {
	var req models.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resident := models.Resident{
		UserID:      req.UserID,
		HouseholdID: req.HouseholdID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   req.BirthDate,
		Gender:      req.Gender,
		CivilStatus: req.CivilStatus,
		ContactNo:   req.ContactNo,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO residents (user_id, household_id, first_name, last_name, birth_date, gender, civil_status, contact_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, household_id, first_name, last_name, birth_date, gender, civil_status, contact_no, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query,
		resident.UserID, resident.HouseholdID, resident.FirstName, resident.LastName,
		resident.BirthDate, resident.Gender, resident.CivilStatus, resident.ContactNo,
	).Scan(
		&resident.ID, &resident.UserID, &resident.HouseholdID, &resident.FirstName, &resident.LastName,
		&resident.BirthDate, &resident.Gender, &resident.CivilStatus, &resident.ContactNo,
		&resident.CreatedAt, &resident.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resident"})
		return
	}

	c.JSON(http.StatusCreated, resident)
}

func (s *Server) UpdateResident(c *gin.Context) {
	residentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resident ID"})
		return
	}

	var req models.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	query := `
		UPDATE residents
		SET household_id = $1, first_name = $2, last_name = $3, birth_date = $4, gender = $5, civil_status = $6, contact_no = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, user_id, household_id, first_name, last_name, birth_date, gender, civil_status, contact_no, created_at, updated_at
	`

	var resident models.Resident
	err = s.db.QueryRow(ctx, query,
		req.HouseholdID, req.FirstName, req.LastName, req.BirthDate,
		req.Gender, req.CivilStatus, req.ContactNo, residentID,
	).Scan(
		&resident.ID, &resident.UserID, &resident.HouseholdID, &resident.FirstName, &resident.LastName,
		&resident.BirthDate, &resident.Gender, &resident.CivilStatus, &resident.ContactNo,
		&resident.CreatedAt, &resident.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resident"})
		return
	}

	c.JSON(http.StatusOK, resident)
}

func (s *Server) DeleteResident(c *gin.Context) {
	residentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resident ID"})
		return
	}

	ctx := c.Request.Context()
	_, err = s.db.Exec(ctx, `DELETE FROM residents WHERE id = $1`, residentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resident"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resident deleted successfully"})
}

// Youth Profile Handlers
func (s *Server) CreateYouthProfile(c *gin.Context) {
	var req models.CreateYouthProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.YouthProfile{
		UserID:     req.UserID,
		ResidentID: req.ResidentID,
		BirthDate:  req.BirthDate,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO youth_profiles (user_id, resident_id, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, resident_id, birth_date, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, profile.UserID, profile.ResidentID, profile.BirthDate).Scan(
		&profile.ID, &profile.UserID, &profile.ResidentID, &profile.BirthDate, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create youth profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}
