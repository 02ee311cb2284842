package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Zone Handlers
func (s *Server) GetZones(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := s.db.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM zones ORDER BY name ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch zones"})
		return
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		var z models.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Description, &z.CreatedAt, &z.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan zone"})
			return
		}
		zones = append(zones, z)
	}

	c.JSON(http.StatusOK, zones)
}

func (s *Server) CreateZone(c *gin.Context) {
	var req models.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone := models.Zone{Name: req.Name, Description: req.Description}

	ctx := c.Request.Context()
	query := `
		INSERT INTO zones (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, zone.Name, zone.Description).Scan(
		&zone.ID, &zone.Name, &zone.Description, &zone.CreatedAt, &zone.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zone"})
		return
	}

	c.JSON(http.StatusCreated, zone)
}

func (s *Server) DeleteZone(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM zones WHERE id = $1`, zoneID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete zone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Zone deleted successfully"})
}

// Household Handlers
func (s *Server) GetHouseholds(c *gin.Context) {
	ctx := c.Request.Context()

	query := `
		SELECT h.id, h.household_no, h.zone_id, h.head_resident_id, h.created_at, h.updated_at,
			   COALESCE(z.name, '') as zone_name
		FROM households h
		LEFT JOIN zones z ON h.zone_id = z.id
		ORDER BY h.household_no ASC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch households"})
		return
	}
	defer rows.Close()

	var households []models.HouseholdWithZone
	for rows.Next() {
		var h models.HouseholdWithZone
		err := rows.Scan(
			&h.ID, &h.HouseholdNo, &h.ZoneID, &h.HeadResidentID, &h.CreatedAt, &h.UpdatedAt, &h.ZoneName,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan household"})
			return
		}
		households = append(households, h)
	}

	c.JSON(http.StatusOK, households)
}

func (s *Server) CreateHousehold(c *gin.Context) {
	var req models.CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	household := models.Household{
		HouseholdNo:    req.HouseholdNo,
		ZoneID:         req.ZoneID,
		HeadResidentID: req.HeadResidentID,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO households (household_no, zone_id, head_resident_id)
		VALUES ($1, $2, $3)
		RETURNING id, household_no, zone_id, head_resident_id, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, household.HouseholdNo, household.ZoneID, household.HeadResidentID).Scan(
		&household.ID, &household.HouseholdNo, &household.ZoneID, &household.HeadResidentID,
		&household.CreatedAt, &household.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create household"})
		return
	}

	c.JSON(http.StatusCreated, household)
}

func (s *Server) DeleteHousehold(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid household ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM households WHERE id = $1`, householdID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete household"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Household deleted successfully"})
}

// Hotline Handlers
func (s *Server) GetHotlines(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := s.db.Query(ctx, `SELECT id, name, number, category, created_at, updated_at FROM hotlines ORDER BY name ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotlines"})
		return
	}
	defer rows.Close()

	var hotlines []models.Hotline
	for rows.Next() {
		var h models.Hotline
		if err := rows.Scan(&h.ID, &h.Name, &h.Number, &h.Category, &h.CreatedAt, &h.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan hotline"})
			return
		}
		hotlines = append(hotlines, h)
	}

	c.JSON(http.StatusOK, hotlines)
}

func (s *Server) CreateHotline(c *gin.Context) {
	var req models.CreateHotlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotline := models.Hotline{Name: req.Name, Number: req.Number, Category: req.Category}

	ctx := c.Request.Context()
	query := `
		INSERT INTO hotlines (name, number, category)
		VALUES ($1, $2, $3)
		RETURNING id, name, number, category, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, hotline.Name, hotline.Number, hotline.Category).Scan(
		&hotline.ID, &hotline.Name, &hotline.Number, &hotline.Category, &hotline.CreatedAt, &hotline.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotline"})
		return
	}

	c.JSON(http.StatusCreated, hotline)
}

func (s *Server) DeleteHotline(c *gin.Context) {
	hotlineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotline ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM hotlines WHERE id = $1`, hotlineID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hotline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hotline deleted successfully"})
}
