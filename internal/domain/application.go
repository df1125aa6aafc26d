package domain

import (
	"context"
	"io"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Attachment binds an Application to its stored resume blob. It is required at
// creation time and immutable afterwards.
type Attachment struct {
	BlobID      string `json:"blob_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// Application represents one applicant's submission to one job posting.
// Only Status is mutable after creation, and only through the status workflow.
type Application struct {
	ID          int64      `json:"id"`
	JobID       int64      `json:"job_id"`
	ApplicantID string     `json:"applicant_id"`
	CoverLetter string     `json:"cover_letter"`
	Attachment  Attachment `json:"attachment"`
	Status      string     `json:"status"` // pending → accepted / rejected
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined data for list and detail responses
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	JobCompany     *string `json:"job_company,omitempty"`
	JobLocation    *string `json:"job_location,omitempty"`
}

// ResumeMeta carries the upload metadata for a resume file as provided by the
// HTTP layer. Size is the exact byte count when known, -1 otherwise.
type ResumeMeta struct {
	Filename    string
	ContentType string
	Size        int64
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID string) ([]Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	CheckExists(ctx context.Context, jobID int64, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationUsecase defines business logic for applications. Every method
// receives the resolved Actor; authorization is evaluated inside, never assumed.
type ApplicationUsecase interface {
	// Jobseeker operations
	Submit(ctx context.Context, actor Actor, jobID int64, coverLetter string, resume io.Reader, meta ResumeMeta) (*Application, error)
	GetMyApplications(ctx context.Context, actor Actor) ([]Application, error)

	// Applicant-owner, job-owner recruiter, or admin
	DownloadResume(ctx context.Context, actor Actor, applicationID int64) (io.ReadCloser, Attachment, error)

	// Recruiter/admin operations
	ListByJob(ctx context.Context, actor Actor, jobID int64) ([]Application, error)
	ListAll(ctx context.Context, actor Actor) ([]Application, error)
	UpdateStatus(ctx context.Context, actor Actor, applicationID int64, status string) (*Application, error)
}
