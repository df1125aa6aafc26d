package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobportal-api/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. Job, applicant and attachment references
// are required; a record without them can never resolve and is rejected here
// as a last line of defense behind the usecase checks.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	if app.JobID == 0 || app.ApplicantID == "" || app.Attachment.BlobID == "" {
		return domain.ErrValidation
	}

	query := `
		INSERT INTO applications (job_id, applicant_id, cover_letter, resume_blob_id, resume_filename, resume_content_type, resume_size_bytes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	return r.db.QueryRow(ctx, query,
		app.JobID,
		app.ApplicantID,
		app.CoverLetter,
		app.Attachment.BlobID,
		app.Attachment.Filename,
		app.Attachment.ContentType,
		app.Attachment.SizeBytes,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
}

// GetByID retrieves an application by ID with joined applicant and job data.
// Only display columns are joined; credentials are never selected.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.cover_letter,
			a.resume_blob_id, a.resume_filename, a.resume_content_type, a.resume_size_bytes,
			a.status, a.created_at, a.updated_at,
			u.name as applicant_name,
			u.email as applicant_email,
			j.title as job_title,
			j.company as job_company,
			j.location as job_location
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter,
		&app.Attachment.BlobID, &app.Attachment.Filename, &app.Attachment.ContentType, &app.Attachment.SizeBytes,
		&app.Status, &app.CreatedAt, &app.UpdatedAt,
		&app.ApplicantName, &app.ApplicantEmail,
		&app.JobTitle, &app.JobCompany, &app.JobLocation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with joined applicant data
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.cover_letter,
			a.resume_blob_id, a.resume_filename, a.resume_content_type, a.resume_size_bytes,
			a.status, a.created_at, a.updated_at,
			u.name as applicant_name,
			u.email as applicant_email,
			j.title as job_title,
			j.company as job_company,
			j.location as job_location
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	return r.queryApplications(ctx, query, jobID)
}

// GetByApplicantID retrieves all applications for an applicant with job summaries
func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.cover_letter,
			a.resume_blob_id, a.resume_filename, a.resume_content_type, a.resume_size_bytes,
			a.status, a.created_at, a.updated_at,
			u.name as applicant_name,
			u.email as applicant_email,
			j.title as job_title,
			j.company as job_company,
			j.location as job_location
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	return r.queryApplications(ctx, query, applicantID)
}

// GetAll retrieves every application; callers gate this to admins
func (r *applicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.cover_letter,
			a.resume_blob_id, a.resume_filename, a.resume_content_type, a.resume_size_bytes,
			a.status, a.created_at, a.updated_at,
			u.name as applicant_name,
			u.email as applicant_email,
			j.title as job_title,
			j.company as job_company,
			j.location as job_location
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		ORDER BY a.created_at DESC`

	return r.queryApplications(ctx, query)
}

// CheckExists checks if an application already exists for the job/applicant combination
func (r *applicationRepo) CheckExists(ctx context.Context, jobID int64, applicantID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter,
			&app.Attachment.BlobID, &app.Attachment.Filename, &app.Attachment.ContentType, &app.Attachment.SizeBytes,
			&app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.ApplicantName, &app.ApplicantEmail,
			&app.JobTitle, &app.JobCompany, &app.JobLocation,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
