package docrequest

import (
	"context"
	"errors"

	"barangay-backend/internal/database"
	"barangay-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	db *database.Database
}

func NewPostgresRepository(db *database.Database) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ResidentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM residents WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) DocumentTypeByID(ctx context.Context, id uuid.UUID) (*models.DocumentType, error) {
	var dt models.DocumentType
	query := `SELECT id, name, fee, created_at, updated_at FROM document_types WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(&dt.ID, &dt.Name, &dt.Fee, &dt.CreatedAt, &dt.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dt, nil
}

// InsertWithPayment writes the request and its payment atomically.
func (r *PostgresRepository) InsertWithPayment(ctx context.Context, req *models.DocumentRequest, payment *models.Payment) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertRequest := `
		INSERT INTO document_requests (id, resident_id, document_type_id, purpose, status, qr_token, request_date)
		VALUES ($1, $2, $3, $4, $5, $6, TO_CHAR(NOW(), 'YYYY-MM-DD'))
		RETURNING request_date, created_at, updated_at
	`
	err = tx.QueryRow(ctx, insertRequest,
		req.ID, req.ResidentID, req.DocumentTypeID, req.Purpose, req.Status, req.QRToken,
	).Scan(&req.RequestDate, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return err
	}

	insertPayment := `
		INSERT INTO payments (id, document_request_id, method, amount, reference_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, insertPayment,
		payment.ID, payment.DocumentRequestID, payment.Method, payment.Amount, payment.ReferenceNo,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) RequestByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	return r.scanRequest(r.db.QueryRow(ctx, requestSelect+` WHERE id = $1`, id))
}

func (r *PostgresRepository) RequestByToken(ctx context.Context, token string) (*models.DocumentRequest, error) {
	return r.scanRequest(r.db.QueryRow(ctx, requestSelect+` WHERE qr_token = $1`, token))
}

const requestSelect = `
	SELECT id, resident_id, document_type_id, purpose, status, qr_token, request_date, released_at, created_at, updated_at
	FROM document_requests`

func (r *PostgresRepository) scanRequest(row pgx.Row) (*models.DocumentRequest, error) {
	var req models.DocumentRequest
	err := row.Scan(
		&req.ID, &req.ResidentID, &req.DocumentTypeID, &req.Purpose, &req.Status,
		&req.QRToken, &req.RequestDate, &req.ReleasedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus performs the guarded transition. The WHERE clause matches the
// expected source state; zero rows means the request is missing or in another
// state, reported as (nil, nil) for the service to classify.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (*models.DocumentRequest, error) {
	query := `
		UPDATE document_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING id, resident_id, document_type_id, purpose, status, qr_token, request_date, released_at, created_at, updated_at
	`
	return r.scanRequest(r.db.QueryRow(ctx, query, to.String(), id, from.String()))
}

// ReleaseByToken is the single authoritative compare-and-swap for QR release.
func (r *PostgresRepository) ReleaseByToken(ctx context.Context, token string) (*models.DocumentRequest, error) {
	query := `
		UPDATE document_requests
		SET status = $1, released_at = NOW(), updated_at = NOW()
		WHERE qr_token = $2 AND status = $3
		RETURNING id, resident_id, document_type_id, purpose, status, qr_token, request_date, released_at, created_at, updated_at
	`
	return r.scanRequest(r.db.QueryRow(ctx, query, StatusReleased.String(), token, StatusReady.String()))
}

func (r *PostgresRepository) DetailByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequestDetail, error) {
	query := `
		SELECT dr.id, dr.resident_id, dr.document_type_id, dr.purpose, dr.status, dr.qr_token,
			   dr.request_date, dr.released_at, dr.created_at, dr.updated_at,
			   COALESCE(dt.name, 'N/A'), COALESCE(dt.fee, 0),
			   COALESCE(res.first_name || ' ' || res.last_name, 'N/A')
		FROM document_requests dr
		LEFT JOIN document_types dt ON dr.document_type_id = dt.id
		LEFT JOIN residents res ON dr.resident_id = res.id
		WHERE dr.id = $1
	`

	var d models.DocumentRequestDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.ResidentID, &d.DocumentTypeID, &d.Purpose, &d.Status, &d.QRToken,
		&d.RequestDate, &d.ReleasedAt, &d.CreatedAt, &d.UpdatedAt,
		&d.DocumentTypeName, &d.DocumentFee, &d.ResidentName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p models.Payment
	paymentQuery := `
		SELECT id, document_request_id, method, amount, reference_no, created_at, updated_at
		FROM payments
		WHERE document_request_id = $1
	`
	err = r.db.QueryRow(ctx, paymentQuery, id).Scan(
		&p.ID, &p.DocumentRequestID, &p.Method, &p.Amount, &p.ReferenceNo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == nil {
		d.Payment = &p
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return &d, nil
}

func (r *PostgresRepository) CurrentOfficials(ctx context.Context) ([]models.Official, error) {
	query := `
		SELECT id, name, position, term_start, term_end, created_at, updated_at
		FROM officials
		ORDER BY position ASC, name ASC
	`

	rows, err := r.db.Query(ctx, query)
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

func (r *PostgresRepository) ResidentEmail(ctx context.Context, residentID uuid.UUID) (string, error) {
	var email string
	query := `
		SELECT u.email
		FROM residents res
		JOIN users u ON res.user_id = u.id
		WHERE res.id = $1
	`
	err := r.db.QueryRow(ctx, query, residentID).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return email, err
}
