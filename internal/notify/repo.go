package notify

import (
	"context"
	"errors"

	"barangay-backend/internal/database"
	"barangay-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresSources backs the aggregator with the portal database.
type PostgresSources struct {
	db *database.Database
}

func NewPostgresSources(db *database.Database) *PostgresSources {
	return &PostgresSources{db: db}
}

func (r *PostgresSources) ProfileFor(ctx context.Context, userID uuid.UUID) (Profile, error) {
	profile := Profile{UserID: userID}

	var youthID uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM youth_profiles WHERE user_id = $1`, userID).Scan(&youthID)
	if err == nil {
		profile.YouthID = &youthID
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return profile, err
	}

	var residentID uuid.UUID
	err = r.db.QueryRow(ctx, `SELECT id FROM residents WHERE user_id = $1`, userID).Scan(&residentID)
	if err == nil {
		profile.ResidentID = &residentID
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return profile, err
	}

	return profile, nil
}

func (r *PostgresSources) RecentAnnouncements(ctx context.Context, limit int) ([]models.Announcement, error) {
	query := `
		SELECT id, title, content, created_at, updated_at
		FROM announcements
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *PostgresSources) RegisteredParticipations(ctx context.Context, youthID uuid.UUID, limit int) ([]models.Participation, error) {
	query := `
		SELECT id, youth_id, project_id, attendance_status, created_at, updated_at
		FROM participations
		WHERE youth_id = $1 AND attendance_status = 'registered'
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, youthID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participations []models.Participation
	for rows.Next() {
		var p models.Participation
		if err := rows.Scan(&p.ID, &p.YouthID, &p.ProjectID, &p.AttendanceStatus, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		participations = append(participations, p)
	}
	return participations, rows.Err()
}

func (r *PostgresSources) ProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	query := `SELECT id, title, description, start_date, status, created_at, updated_at FROM projects WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.StartDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresSources) ApplicationsByYouth(ctx context.Context, youthID uuid.UUID, limit int) ([]models.ScholarshipApplication, error) {
	query := `
		SELECT id, youth_id, scholarship_id, status, created_at, updated_at
		FROM scholarship_applications
		WHERE youth_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, youthID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []models.ScholarshipApplication
	for rows.Next() {
		var a models.ScholarshipApplication
		if err := rows.Scan(&a.ID, &a.YouthID, &a.ScholarshipID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *PostgresSources) ScholarshipByID(ctx context.Context, id uuid.UUID) (*models.Scholarship, error) {
	var s models.Scholarship
	query := `SELECT id, title, description, slots, created_at, updated_at FROM scholarships WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.Slots, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresSources) RecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	query := `
		SELECT id, title, description, activity_date, location, created_at, updated_at
		FROM activities
		ORDER BY activity_date DESC, created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.ActivityDate, &a.Location, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *PostgresSources) BlottersByComplainant(ctx context.Context, residentID uuid.UUID, limit int) ([]models.Blotter, error) {
	query := `
		SELECT id, complainant_resident_id, respondent_name, details, status, incident_date, created_at, updated_at
		FROM blotters
		WHERE complainant_resident_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, residentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blotters []models.Blotter
	for rows.Next() {
		var b models.Blotter
		if err := rows.Scan(&b.ID, &b.ComplainantResidentID, &b.RespondentName, &b.Details, &b.Status, &b.IncidentDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		blotters = append(blotters, b)
	}
	return blotters, rows.Err()
}

func (r *PostgresSources) RequestsByResident(ctx context.Context, residentID uuid.UUID, limit int) ([]models.DocumentRequestDetail, error) {
	query := `
		SELECT dr.id, dr.resident_id, dr.document_type_id, dr.purpose, dr.status, dr.qr_token,
			   dr.request_date, dr.released_at, dr.created_at, dr.updated_at,
			   COALESCE(dt.name, 'N/A') as document_type_name, COALESCE(dt.fee, 0) as document_fee
		FROM document_requests dr
		LEFT JOIN document_types dt ON dr.document_type_id = dt.id
		WHERE dr.resident_id = $1
		ORDER BY dr.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, residentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.DocumentRequestDetail
	for rows.Next() {
		var d models.DocumentRequestDetail
		err := rows.Scan(
			&d.ID, &d.ResidentID, &d.DocumentTypeID, &d.Purpose, &d.Status, &d.QRToken,
			&d.RequestDate, &d.ReleasedAt, &d.CreatedAt, &d.UpdatedAt,
			&d.DocumentTypeName, &d.DocumentFee,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, d)
	}
	return requests, rows.Err()
}

func (r *PostgresSources) FeedbackByResident(ctx context.Context, residentID uuid.UUID, limit int) ([]models.Feedback, error) {
	query := `
		SELECT id, resident_id, feedback_type, message, created_at, updated_at
		FROM feedback
		WHERE resident_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, residentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.ResidentID, &f.FeedbackType, &f.Message, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}

func (r *PostgresSources) RecentOfficials(ctx context.Context, limit int) ([]models.Official, error) {
	query := `
		SELECT id, name, position, term_start, term_end, created_at, updated_at
		FROM officials
		ORDER BY updated_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var officials []models.Official
	for rows.Next() {
		var o models.Official
		if err := rows.Scan(&o.ID, &o.Name, &o.Position, &o.TermStart, &o.TermEnd, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		officials = append(officials, o)
	}
	return officials, rows.Err()
}
