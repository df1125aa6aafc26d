package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"go-jobportal-api/internal/authz"
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/storage"
	"go-jobportal-api/pkg/apperror"
	"go-jobportal-api/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	blobStore       storage.BlobStore
	gate            authz.Gate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	blobStore storage.BlobStore,
	gate authz.Gate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		blobStore:       blobStore,
		gate:            gate,
	}
}

// Submit creates a new application for the actor. The resume blob is stored
// before the record that references it, so a visible record always resolves to
// a readable blob. The reverse failure (record create fails after the blob is
// written) leaves an unreachable orphan blob, which is tolerated and logged.
func (uc *applicationUsecase) Submit(ctx context.Context, actor domain.Actor, jobID int64, coverLetter string, resume io.Reader, meta domain.ResumeMeta) (*domain.Application, error) {
	// 1. Validate actor
	if actor.ID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	// 2. Validate inputs before touching storage
	if jobID == 0 {
		return nil, apperror.BadRequest("jobId is required")
	}
	if resume == nil {
		return nil, apperror.BadRequest("Resume file (field 'resume') is required")
	}

	// 3. Validate job exists
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	// 4. One application per job per applicant
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	// 5. Store the resume blob first
	blobID, err := uc.blobStore.Store(ctx, resume, storage.PutOptions{
		Size:        meta.Size,
		ContentType: meta.ContentType,
		Filename:    meta.Filename,
		Metadata: map[string]string{
			"original-filename": meta.Filename,
		},
	})
	if err != nil {
		return nil, apperror.StorageWrite(err)
	}

	// 6. Create the application record referencing the stored blob
	app := &domain.Application{
		JobID:       job.ID,
		ApplicantID: actor.ID,
		CoverLetter: coverLetter,
		Attachment: domain.Attachment{
			BlobID:      blobID,
			Filename:    meta.Filename,
			ContentType: meta.ContentType,
			SizeBytes:   meta.Size,
		},
		Status: domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// The blob is unreachable without a record; log the orphan for operators
		logger.Log.Error("application create failed after blob store, orphan blob left",
			"blob_id", blobID, "job_id", jobID, "applicant_id", actor.ID, "error", err)
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// GetMyApplications returns all applications submitted by the actor
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if actor.ID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	apps, err := uc.applicationRepo.GetByApplicantID(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// DownloadResume opens the stored resume for an application the actor may see.
// The returned stream is one-pass; the caller must Close it even on abandon.
func (uc *applicationUsecase) DownloadResume(ctx context.Context, actor domain.Actor, applicationID int64) (io.ReadCloser, domain.Attachment, error) {
	app, job, err := uc.getWithJob(ctx, applicationID)
	if err != nil {
		return nil, domain.Attachment{}, err
	}

	if err := uc.gate.CanDownloadResume(actor, app, job); err != nil {
		return nil, domain.Attachment{}, err
	}

	rc, _, err := uc.blobStore.Open(ctx, app.Attachment.BlobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Attachment{}, apperror.NotFound("Resume not found")
		}
		return nil, domain.Attachment{}, apperror.StorageRead(err)
	}
	return rc, app.Attachment, nil
}

// ListByJob returns all applications for a job, for its owner or an admin
func (uc *applicationUsecase) ListByJob(ctx context.Context, actor domain.Actor, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.gate.CanViewJobApplications(actor, job); err != nil {
		return nil, err
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListAll returns every application; admin only
func (uc *applicationUsecase) ListAll(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if err := uc.gate.CanViewAllApplications(actor); err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus transitions an application to accepted or rejected. "pending" is
// not a valid target: it is the initial state, not a decision. Re-deciding an
// already decided application is allowed and simply overwrites the status.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actor domain.Actor, applicationID int64, status string) (*domain.Application, error) {
	// 1. Validate target status before any lookup
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return nil, apperror.BadRequest("Invalid status. Must be: accepted or rejected")
	}

	// 2. Get application with its job for the ownership check
	app, job, err := uc.getWithJob(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	// 3. Gate the mutation
	if err := uc.gate.CanChangeStatus(actor, job); err != nil {
		return nil, err
	}

	// 4. Persist
	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	app.Status = status
	app.UpdatedAt = time.Now()
	return app, nil
}

// getWithJob loads an application and the job it targets. Both lookups map a
// miss to NotFound; any other repository failure is a server error and must
// not leak driver details to the caller.
func (uc *applicationUsecase) getWithJob(ctx context.Context, applicationID int64) (*domain.Application, *domain.Job, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Application not found")
		}
		return nil, nil, apperror.Internal(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Job not found")
		}
		return nil, nil, apperror.Internal(err)
	}
	return app, job, nil
}
