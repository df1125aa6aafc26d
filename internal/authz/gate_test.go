package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobportal-api/internal/authz"
	"go-jobportal-api/internal/domain"
)

var (
	owner    = domain.Actor{ID: "5", Role: domain.RoleRecruiter, Email: "owner@example.com"}
	outsider = domain.Actor{ID: "6", Role: domain.RoleRecruiter, Email: "other@example.com"}
	seeker   = domain.Actor{ID: "1", Role: domain.RoleJobseeker, Email: "seeker@example.com"}
	admin    = domain.Actor{ID: "9", Role: domain.RoleAdmin, Email: "admin@example.com"}

	job = &domain.Job{ID: 10, PostedBy: "5"}
	app = &domain.Application{ID: 42, JobID: 10, ApplicantID: "1"}
)

func TestCanViewJobApplications(t *testing.T) {
	gate := authz.NewGate()

	assert.NoError(t, gate.CanViewJobApplications(owner, job))
	assert.NoError(t, gate.CanViewJobApplications(admin, job))
	assert.Error(t, gate.CanViewJobApplications(outsider, job))
	assert.Error(t, gate.CanViewJobApplications(seeker, job))
}

func TestCanViewAllApplications(t *testing.T) {
	gate := authz.NewGate()

	assert.NoError(t, gate.CanViewAllApplications(admin))
	assert.Error(t, gate.CanViewAllApplications(owner))
	assert.Error(t, gate.CanViewAllApplications(seeker))
}

func TestCanDownloadResume(t *testing.T) {
	gate := authz.NewGate()

	t.Run("Applicant, owning recruiter and admin are allowed", func(t *testing.T) {
		assert.NoError(t, gate.CanDownloadResume(seeker, app, job))
		assert.NoError(t, gate.CanDownloadResume(owner, app, job))
		assert.NoError(t, gate.CanDownloadResume(admin, app, job))
	})

	t.Run("Other jobseekers and non-owning recruiters are denied", func(t *testing.T) {
		other := domain.Actor{ID: "2", Role: domain.RoleJobseeker}
		assert.Error(t, gate.CanDownloadResume(other, app, job))
		assert.Error(t, gate.CanDownloadResume(outsider, app, job))
	})

	t.Run("Ownership compares ids, never email", func(t *testing.T) {
		// Same email as the owner but a different id must still be denied
		impostor := domain.Actor{ID: "7", Role: domain.RoleRecruiter, Email: owner.Email}
		assert.Error(t, gate.CanDownloadResume(impostor, app, job))
	})
}

func TestCanChangeStatus(t *testing.T) {
	gate := authz.NewGate()

	assert.NoError(t, gate.CanChangeStatus(owner, job))
	assert.NoError(t, gate.CanChangeStatus(admin, job))
	assert.Error(t, gate.CanChangeStatus(outsider, job))
	assert.Error(t, gate.CanChangeStatus(seeker, job))
}
