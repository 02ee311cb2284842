package database

import (
	"context"
	"fmt"

	"barangay-backend/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Database struct {
	Pool *pgxpool.Pool
}

func NewConnection(cfg *config.Config) (*Database, error) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	logrus.Info("Successfully connected to database")
	return &Database{Pool: pool}, nil
}

func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func (db *Database) GetDB() *pgxpool.Pool {
	return db.Pool
}

func RunMigrations(db *Database) error {
	ctx := context.Background()

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL CHECK (role IN ('admin', 'staff', 'resident')),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createZonesTable := `
	CREATE TABLE IF NOT EXISTS zones (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		description TEXT DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createResidentsTable := `
	CREATE TABLE IF NOT EXISTS residents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID UNIQUE REFERENCES users(id) ON DELETE SET NULL,
		household_id UUID,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		birth_date DATE,
		gender VARCHAR(50) DEFAULT '',
		civil_status VARCHAR(50) DEFAULT '',
		contact_no VARCHAR(50) DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createHouseholdsTable := `
	CREATE TABLE IF NOT EXISTS households (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		household_no VARCHAR(50) UNIQUE NOT NULL,
		zone_id UUID REFERENCES zones(id) ON DELETE SET NULL,
		head_resident_id UUID REFERENCES residents(id) ON DELETE SET NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createYouthProfilesTable := `
	CREATE TABLE IF NOT EXISTS youth_profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resident_id UUID REFERENCES residents(id) ON DELETE SET NULL,
		birth_date DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createOfficialsTable := `
	CREATE TABLE IF NOT EXISTS officials (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL,
		term_start DATE,
		term_end DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createHotlinesTable := `
	CREATE TABLE IF NOT EXISTS hotlines (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		number VARCHAR(50) NOT NULL,
		category VARCHAR(100) DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createActivitiesTable := `
	CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(500) NOT NULL,
		description TEXT DEFAULT '',
		activity_date VARCHAR(100) DEFAULT '',
		location VARCHAR(255) DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createAnnouncementsTable := `
	CREATE TABLE IF NOT EXISTS announcements (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(500) NOT NULL,
		content TEXT DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createProjectsTable := `
	CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(500) NOT NULL,
		description TEXT DEFAULT '',
		start_date VARCHAR(100) DEFAULT '',
		status VARCHAR(50) DEFAULT 'planned',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createParticipationsTable := `
	CREATE TABLE IF NOT EXISTS participations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		youth_id UUID NOT NULL REFERENCES youth_profiles(id) ON DELETE CASCADE,
		project_id UUID NOT NULL,
		attendance_status VARCHAR(50) NOT NULL DEFAULT 'registered',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createScholarshipsTable := `
	CREATE TABLE IF NOT EXISTS scholarships (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(500) NOT NULL,
		description TEXT DEFAULT '',
		slots INTEGER DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createScholarshipApplicationsTable := `
	CREATE TABLE IF NOT EXISTS scholarship_applications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		youth_id UUID NOT NULL REFERENCES youth_profiles(id) ON DELETE CASCADE,
		scholarship_id UUID NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createBlottersTable := `
	CREATE TABLE IF NOT EXISTS blotters (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		complainant_resident_id UUID REFERENCES residents(id) ON DELETE SET NULL,
		respondent_name VARCHAR(255) DEFAULT '',
		details TEXT DEFAULT '',
		status VARCHAR(50) DEFAULT '',
		incident_date DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createFeedbackTable := `
	CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		resident_id UUID NOT NULL REFERENCES residents(id) ON DELETE CASCADE,
		feedback_type VARCHAR(100) NOT NULL DEFAULT 'general',
		message TEXT DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createDocumentTypesTable := `
	CREATE TABLE IF NOT EXISTS document_types (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) UNIQUE NOT NULL,
		fee NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createDocumentRequestsTable := `
	CREATE TABLE IF NOT EXISTS document_requests (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		resident_id UUID NOT NULL REFERENCES residents(id) ON DELETE CASCADE,
		document_type_id UUID NOT NULL REFERENCES document_types(id) ON DELETE CASCADE,
		purpose TEXT NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'on process', 'ready for pick-up', 'released', 'declined')),
		qr_token VARCHAR(64) UNIQUE NOT NULL,
		request_date VARCHAR(100) DEFAULT '',
		released_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createPaymentsTable := `
	CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		document_request_id UUID UNIQUE NOT NULL REFERENCES document_requests(id) ON DELETE CASCADE,
		method VARCHAR(20) NOT NULL CHECK (method IN ('cash', 'gcash', 'free')),
		amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		reference_no VARCHAR(100) DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createIndexes := `
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	CREATE INDEX IF NOT EXISTS idx_residents_user_id ON residents(user_id);
	CREATE INDEX IF NOT EXISTS idx_residents_household_id ON residents(household_id);
	CREATE INDEX IF NOT EXISTS idx_youth_profiles_user_id ON youth_profiles(user_id);
	CREATE INDEX IF NOT EXISTS idx_participations_youth_id ON participations(youth_id);
	CREATE INDEX IF NOT EXISTS idx_scholarship_applications_youth_id ON scholarship_applications(youth_id);
	CREATE INDEX IF NOT EXISTS idx_blotters_complainant ON blotters(complainant_resident_id);
	CREATE INDEX IF NOT EXISTS idx_feedback_resident_id ON feedback(resident_id);
	CREATE INDEX IF NOT EXISTS idx_document_requests_resident_id ON document_requests(resident_id);
	CREATE INDEX IF NOT EXISTS idx_document_requests_status ON document_requests(status);
	CREATE INDEX IF NOT EXISTS idx_document_requests_qr_token ON document_requests(qr_token);
	CREATE INDEX IF NOT EXISTS idx_payments_request_id ON payments(document_request_id);`

	addHouseholdFK := `
	DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE constraint_name = 'fk_residents_household'
		) THEN
			ALTER TABLE residents ADD CONSTRAINT fk_residents_household
				FOREIGN KEY (household_id) REFERENCES households(id) ON DELETE SET NULL;
		END IF;
	END $$;
	`

	migrations := []string{
		createUsersTable,
		createZonesTable,
		createResidentsTable,
		createHouseholdsTable,
		createYouthProfilesTable,
		createOfficialsTable,
		createHotlinesTable,
		createActivitiesTable,
		createAnnouncementsTable,
		createProjectsTable,
		createParticipationsTable,
		createScholarshipsTable,
		createScholarshipApplicationsTable,
		createBlottersTable,
		createFeedbackTable,
		createDocumentTypesTable,
		createDocumentRequestsTable,
		createPaymentsTable,
		createIndexes,
		addHouseholdFK,
	}

	for _, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func (db *Database) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

func (db *Database) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.Pool.QueryRow(ctx, sql, args...)
}

func (db *Database) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.Pool.Query(ctx, sql, args...)
}

func (db *Database) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return db.Pool.Exec(ctx, sql, args...)
}
