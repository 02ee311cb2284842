package api

import (
	"net/http"

	"barangay-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Announcement Handlers
func (s *Server) GetAnnouncements(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := s.db.Query(ctx, `SELECT id, title, content, created_at, updated_at FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan announcement"})
			return
		}
		announcements = append(announcements, a)
	}

	c.JSON(http.StatusOK, announcements)
}

func (s *Server) CreateAnnouncement(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement := models.Announcement{Title: req.Title, Content: req.Content}

	ctx := c.Request.Context()
	query := `
		INSERT INTO announcements (title, content)
		VALUES ($1, $2)
		RETURNING id, title, content, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, announcement.Title, announcement.Content).Scan(
		&announcement.ID, &announcement.Title, &announcement.Content, &announcement.CreatedAt, &announcement.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

func (s *Server) DeleteAnnouncement(c *gin.Context) {
	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, announcementID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}

// Project Handlers
func (s *Server) GetProjects(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := s.db.Query(ctx, `SELECT id, title, description, start_date, status, created_at, updated_at FROM projects ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.StartDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan project"})
			return
		}
		projects = append(projects, p)
	}

	c.JSON(http.StatusOK, projects)
}

func (s *Server) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "planned"
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		Status:      status,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO projects (title, description, start_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, start_date, status, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, project.Title, project.Description, project.StartDate, project.Status).Scan(
		&project.ID, &project.Title, &project.Description, &project.StartDate, &project.Status,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (s *Server) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// Participation Handlers
func (s *Server) CreateParticipation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	youthID, hasYouth, err := s.youthIDForUser(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve youth profile"})
		return
	}
	if !hasYouth {
		c.JSON(http.StatusForbidden, gin.H{"error": "A youth profile is required to register for projects"})
		return
	}

	var req models.CreateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participation := models.Participation{
		YouthID:          youthID,
		ProjectID:        req.ProjectID,
		AttendanceStatus: "registered",
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO participations (youth_id, project_id, attendance_status)
		VALUES ($1, $2, $3)
		RETURNING id, youth_id, project_id, attendance_status, created_at, updated_at
	`

	err = s.db.QueryRow(ctx, query, participation.YouthID, participation.ProjectID, participation.AttendanceStatus).Scan(
		&participation.ID, &participation.YouthID, &participation.ProjectID, &participation.AttendanceStatus,
		&participation.CreatedAt, &participation.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create participation"})
		return
	}

	c.JSON(http.StatusCreated, participation)
}

func (s *Server) GetMyParticipations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	youthID, hasYouth, err := s.youthIDForUser(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve youth profile"})
		return
	}
	if !hasYouth {
		c.JSON(http.StatusOK, []models.Participation{})
		return
	}

	ctx := c.Request.Context()
	query := `
		SELECT id, youth_id, project_id, attendance_status, created_at, updated_at
		FROM participations
		WHERE youth_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, youthID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch participations"})
		return
	}
	defer rows.Close()

	var participations []models.Participation
	for rows.Next() {
		var p models.Participation
		if err := rows.Scan(&p.ID, &p.YouthID, &p.ProjectID, &p.AttendanceStatus, &p.CreatedAt, &p.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan participation"})
			return
		}
		participations = append(participations, p)
	}

	c.JSON(http.StatusOK, participations)
}

// Scholarship Handlers
func (s *Server) GetScholarships(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := s.db.Query(ctx, `SELECT id, title, description, slots, created_at, updated_at FROM scholarships ORDER BY created_at DESC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scholarships"})
		return
	}
	defer rows.Close()

	var scholarships []models.Scholarship
	for rows.Next() {
		var sch models.Scholarship
		if err := rows.Scan(&sch.ID, &sch.Title, &sch.Description, &sch.Slots, &sch.CreatedAt, &sch.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan scholarship"})
			return
		}
		scholarships = append(scholarships, sch)
	}

	c.JSON(http.StatusOK, scholarships)
}

func (s *Server) CreateScholarship(c *gin.Context) {
	var req models.CreateScholarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scholarship := models.Scholarship{Title: req.Title, Description: req.Description, Slots: req.Slots}

	ctx := c.Request.Context()
	query := `
		INSERT INTO scholarships (title, description, slots)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, slots, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query, scholarship.Title, scholarship.Description, scholarship.Slots).Scan(
		&scholarship.ID, &scholarship.Title, &scholarship.Description, &scholarship.Slots,
		&scholarship.CreatedAt, &scholarship.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create scholarship"})
		return
	}

	c.JSON(http.StatusCreated, scholarship)
}

// Scholarship Application Handlers
func (s *Server) CreateScholarshipApplication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	youthID, hasYouth, err := s.youthIDForUser(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve youth profile"})
		return
	}
	if !hasYouth {
		c.JSON(http.StatusForbidden, gin.H{"error": "A youth profile is required to apply for scholarships"})
		return
	}

	var req models.CreateScholarshipApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application := models.ScholarshipApplication{
		YouthID:       youthID,
		ScholarshipID: req.ScholarshipID,
		Status:        "pending",
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO scholarship_applications (youth_id, scholarship_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, youth_id, scholarship_id, status, created_at, updated_at
	`

	err = s.db.QueryRow(ctx, query, application.YouthID, application.ScholarshipID, application.Status).Scan(
		&application.ID, &application.YouthID, &application.ScholarshipID, &application.Status,
		&application.CreatedAt, &application.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (s *Server) GetMyScholarshipApplications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	youthID, hasYouth, err := s.youthIDForUser(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve youth profile"})
		return
	}
	if !hasYouth {
		c.JSON(http.StatusOK, []models.ScholarshipApplication{})
		return
	}

	ctx := c.Request.Context()
	query := `
		SELECT id, youth_id, scholarship_id, status, created_at, updated_at
		FROM scholarship_applications
		WHERE youth_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, youthID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	defer rows.Close()

	var applications []models.ScholarshipApplication
	for rows.Next() {
		var a models.ScholarshipApplication
		if err := rows.Scan(&a.ID, &a.YouthID, &a.ScholarshipID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan application"})
			return
		}
		applications = append(applications, a)
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateScholarshipApplicationStatus lets staff move an application through
// review (pending, approved, rejected).
func (s *Server) UpdateScholarshipApplicationStatus(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	query := `
		UPDATE scholarship_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, youth_id, scholarship_id, status, created_at, updated_at
	`

	var application models.ScholarshipApplication
	err = s.db.QueryRow(ctx, query, req.Status, applicationID).Scan(
		&application.ID, &application.YouthID, &application.ScholarshipID, &application.Status,
		&application.CreatedAt, &application.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, application)
}
