package main

import (
	"context"
	"log"
	"time"

	"barangay-backend/internal/config"
	"barangay-backend/internal/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database connection
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx := context.Background()

	// Create users
	users := []struct {
		Email    string
		Password string
		Name     string
		Role     string
	}{
		{"admin@barangay.local", "password123", "Barangay Admin", "admin"},
		{"staff@barangay.local", "password123", "Barangay Staff", "staff"},
		{"resident@barangay.local", "password123", "Juan Dela Cruz", "resident"},
	}

	for _, u := range users {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)

		_, err := db.Pool.Exec(ctx, `
			INSERT INTO users (email, password_hash, name, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (email) DO NOTHING
		`, u.Email, string(hashedPassword), u.Name, u.Role, time.Now())

		if err != nil {
			log.Printf("Failed to create user %s: %v\n", u.Email, err)
		} else {
			log.Printf("User %s created (or already exists)\n", u.Email)
		}
	}

	// Zones
	zones := []string{"Zone 1", "Zone 2", "Zone 3", "Zone 4"}
	for _, z := range zones {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO zones (name)
			SELECT $1
			WHERE NOT EXISTS (SELECT 1 FROM zones WHERE name = $1)
		`, z)
		if err != nil {
			log.Printf("Failed to create zone %s: %v\n", z, err)
		}
	}

	// Document types
	docTypes := []struct {
		Name string
		Fee  float64
	}{
		{"Barangay Clearance", 50.00},
		{"Certificate of Residency", 30.00},
		{"Certificate of Indigency", 0.00},
		{"Business Permit", 150.00},
	}
	for _, dt := range docTypes {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO document_types (name, fee)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, dt.Name, dt.Fee)
		if err != nil {
			log.Printf("Failed to create document type %s: %v\n", dt.Name, err)
		}
	}

	// Officials
	officials := []struct {
		Name     string
		Position string
	}{
		{"Maria Santos", "Barangay Captain"},
		{"Pedro Reyes", "Barangay Secretary"},
		{"Ana Lopez", "Barangay Treasurer"},
	}
	for _, o := range officials {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO officials (name, position, term_start, term_end)
			SELECT $1, $2, '2025-01-01', '2028-12-31'
			WHERE NOT EXISTS (SELECT 1 FROM officials WHERE name = $1 AND position = $2)
		`, o.Name, o.Position)
		if err != nil {
			log.Printf("Failed to create official %s: %v\n", o.Name, err)
		}
	}

	log.Println("Seeding completed successfully!")
}
