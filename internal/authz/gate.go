package authz

import (
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/pkg/apperror"
)

// Gate evaluates role and ownership rules for application access. Ownership is
// always the same comparison: Job.PostedBy against Actor.ID. Email is never
// consulted; it is display data, not identity.
type Gate struct{}

func NewGate() Gate {
	return Gate{}
}

// CanViewJobApplications allows recruiters on jobs they posted and admins.
func (Gate) CanViewJobApplications(actor domain.Actor, job *domain.Job) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleRecruiter:
		if job.PostedBy == actor.ID {
			return nil
		}
		return apperror.Forbidden("You do not own this job")
	default:
		return apperror.Forbidden("Only recruiters can view job applications")
	}
}

// CanViewAllApplications is admin-only.
func (Gate) CanViewAllApplications(actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can view all applications")
	}
	return nil
}

// CanDownloadResume allows the applicant themselves, the recruiter who posted
// the job the application targets, and admins.
func (Gate) CanDownloadResume(actor domain.Actor, app *domain.Application, job *domain.Job) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleJobseeker:
		if app.ApplicantID == actor.ID {
			return nil
		}
		return apperror.Forbidden("You can only download your own resume")
	case domain.RoleRecruiter:
		if job.PostedBy == actor.ID {
			return nil
		}
		return apperror.Forbidden("You do not own this job")
	default:
		return apperror.Forbidden("Access denied")
	}
}

// CanChangeStatus allows job-owner recruiters and admins.
func (Gate) CanChangeStatus(actor domain.Actor, job *domain.Job) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleRecruiter:
		if job.PostedBy == actor.ID {
			return nil
		}
		return apperror.Forbidden("You do not own this job's applications")
	default:
		return apperror.Forbidden("Only recruiters can update application status")
	}
}
