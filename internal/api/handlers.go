package api

import (
	"errors"
	"net/http"

	"barangay-backend/internal/auth"
	"barangay-backend/internal/config"
	"barangay-backend/internal/database"
	"barangay-backend/internal/docrequest"
	"barangay-backend/internal/models"
	"barangay-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Server struct {
	db            *database.Database
	jwtManager    *auth.JWTManager
	config        *config.Config
	notifications *notify.Service
	documents     *docrequest.Service
}

func NewServer(db *database.Database, cfg *config.Config, notifications *notify.Service, documents *docrequest.Service) *Server {
	return &Server{
		db:            db,
		jwtManager:    auth.NewJWTManager(cfg),
		config:        cfg,
		notifications: notifications,
		documents:     documents,
	}
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// residentIDForUser resolves the caller's resident profile, if any.
func (s *Server) residentIDForUser(c *gin.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	var residentID uuid.UUID
	err := s.db.QueryRow(c.Request.Context(), `SELECT id FROM residents WHERE user_id = $1`, userID).Scan(&residentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return residentID, true, nil
}

// youthIDForUser resolves the caller's youth (SK) profile, if any.
func (s *Server) youthIDForUser(c *gin.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	var youthID uuid.UUID
	err := s.db.QueryRow(c.Request.Context(), `SELECT id FROM youth_profiles WHERE user_id = $1`, userID).Scan(&youthID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return youthID, true, nil
}

// Auth Handlers
func (s *Server) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Role:         req.Role,
	}

	ctx := c.Request.Context()
	query := `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, role, created_at, updated_at
	`

	err = s.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Name, user.Role).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := s.jwtManager.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{User: user, Token: token})
}

func (s *Server) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var user models.User

	query := `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	err := s.db.QueryRow(ctx, query, req.Email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.jwtManager.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{User: user, Token: token})
}

func (s *Server) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	var user models.User

	query := `
		SELECT id, email, name, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	err := s.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
