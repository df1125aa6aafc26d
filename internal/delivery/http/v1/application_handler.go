package v1

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/delivery/http/middleware"
	"go-jobportal-api/internal/delivery/http/response"
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/pkg/apperror"
	"go-jobportal-api/pkg/validation"
)

type ApplicationHandler struct {
	applicationUC  domain.ApplicationUsecase
	maxResumeBytes int64
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, maxResumeBytes int64) {
	handler := &ApplicationHandler{
		applicationUC:  applicationUC,
		maxResumeBytes: maxResumeBytes,
	}

	applications := r.Group("/applications")
	{
		// Jobseeker routes
		applications.POST("/apply", handler.Submit)
		applications.GET("/my", handler.GetMyApplications)

		// Applicant-owner, job-owner recruiter, or admin
		applications.GET("/:id/resume", handler.DownloadResume)

		// Recruiter/admin routes
		applications.GET("/job/:jobId", handler.ListJobApplications)
		applications.GET("", handler.ListAllApplications)
		applications.PUT("/:id/status", handler.UpdateApplicationStatus)
	}
}

// Submit godoc
// @Summary      Submit a job application
// @Description  Apply to a job with a resume file (Jobseeker only). Multipart form with fields jobId, coverLetter and file field "resume".
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId        formData  int     true   "Job ID"
// @Param        coverLetter  formData  string  false  "Cover letter"
// @Param        resume       formData  file    true   "Resume file (pdf, doc, docx, txt)"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}
	if actor.Role != domain.RoleJobseeker {
		c.Error(apperror.Forbidden("Only jobseekers can apply to jobs"))
		return
	}

	jobIDStr := c.PostForm("jobId")
	if jobIDStr == "" {
		c.Error(apperror.BadRequest("jobId is required"))
		return
	}
	jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}
	coverLetter := c.PostForm("coverLetter")

	fh, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file (field 'resume') is required"))
		return
	}
	if fh.Size > h.maxResumeBytes {
		c.Error(apperror.BadRequest(fmt.Sprintf("Resume exceeds maximum size of %d bytes", h.maxResumeBytes)))
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	// Sniff the leading bytes for file type validation, then splice them back
	// so the upload still streams end to end
	head := make([]byte, validation.SniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		c.Error(apperror.Internal(err))
		return
	}
	head = head[:n]

	contentType := fh.Header.Get("Content-Type")
	if result := validation.ValidateResume(fh.Filename, head, contentType); !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	resume := io.MultiReader(bytes.NewReader(head), file)
	meta := domain.ResumeMeta{
		Filename:    filepath.Base(fh.Filename),
		ContentType: contentType,
		Size:        fh.Size,
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), actor, jobID, coverLetter, resume, meta)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current jobseeker
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}
	if actor.Role != domain.RoleJobseeker {
		c.Error(apperror.Forbidden("Only jobseekers can list their applications"))
		return
	}

	applications, err := h.applicationUC.GetMyApplications(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// DownloadResume godoc
// @Summary      Download a resume
// @Description  Stream the resume attached to an application. Allowed for the applicant, the recruiter who owns the job, and admins.
// @Tags         applications
// @Produce      application/octet-stream
// @Param        id  path  int  true  "Application ID"
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/resume [get]
// @Security     BearerAuth
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	rc, att, err := h.applicationUC.DownloadResume(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}
	defer rc.Close()

	filename := att.Filename
	if filename == "" {
		filename = "resume"
	}
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	}
	c.DataFromReader(http.StatusOK, att.SizeBytes, contentType, rc, extraHeaders)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Get all applications for a specific job (owning recruiter or admin)
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.Application}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /applications/job/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}

	jobIDStr := c.Param("jobId")
	jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListByJob(c.Request.Context(), actor, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListAllApplications godoc
// @Summary      List all applications
// @Description  Get every application in the system (Admin only)
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListAllApplications(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}

	applications, err := h.applicationUC.ListAll(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// UpdateStatusRequest is the request payload for updating application status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,app_status"`
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Accept or reject an application (owning recruiter or admin)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid status. Must be: accepted or rejected"))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("Application %s", app.Status), app)
}
