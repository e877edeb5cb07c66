package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	CompanyID string `json:"company_id" binding:"required,uuid"`
	Title     string `json:"title" binding:"required,min=3,max=200"`

	Description      *string `json:"description"`
	Requirements     *string `json:"requirements"`
	Responsibilities *string `json:"responsibilities"`
	Location         *string `json:"location"`

	JobType         *domain.JobType         `json:"job_type"`
	RemoteType      *domain.RemoteType      `json:"remote_type"`
	ExperienceLevel *domain.ExperienceLevel `json:"experience_level"`

	SalaryMin      *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	SalaryCurrency string   `json:"salary_currency"`

	SkillsRequired  domain.StringList `json:"skills_required"`
	SkillsPreferred domain.StringList `json:"skills_preferred"`
	Benefits        domain.StringList `json:"benefits"`
	TechStack       domain.StringList `json:"tech_stack"`

	EducationRequired *string `json:"education_required"`
	JobURL            *string `json:"job_url" binding:"omitempty,url"`
	ApplicationURL    *string `json:"application_url" binding:"omitempty,url"`

	PostedDate          *time.Time `json:"posted_date"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	ScrapedAt           *time.Time `json:"scraped_at"`

	Source             *string                   `json:"source"`
	Status             domain.JobStatus          `json:"status"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	DataQualityScore   *float64                  `json:"data_quality_score" binding:"omitempty,gte=0,lte=1"`

	SeniorityLevel      *domain.SeniorityLevel      `json:"seniority_level"`
	CompanySizeCategory *domain.CompanySizeCategory `json:"company_size_category"`
}

// Create godoc
// @Summary      Create a job listing
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	// company_id already passed the uuid binding check
	companyID, _ := uuid.Parse(req.CompanyID)

	job := &domain.JobListing{
		CompanyID:           companyID,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Location:            req.Location,
		JobType:             req.JobType,
		RemoteType:          req.RemoteType,
		ExperienceLevel:     req.ExperienceLevel,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      req.SalaryCurrency,
		SkillsRequired:      req.SkillsRequired,
		SkillsPreferred:     req.SkillsPreferred,
		Benefits:            req.Benefits,
		TechStack:           req.TechStack,
		EducationRequired:   req.EducationRequired,
		JobURL:              req.JobURL,
		ApplicationURL:      req.ApplicationURL,
		PostedDate:          req.PostedDate,
		ApplicationDeadline: req.ApplicationDeadline,
		ScrapedAt:           req.ScrapedAt,
		Source:              req.Source,
		Status:              req.Status,
		VerificationStatus:  req.VerificationStatus,
		DataQualityScore:    req.DataQualityScore,
		SeniorityLevel:      req.SeniorityLevel,
		CompanySizeCategory: req.CompanySizeCategory,
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job created", created)
}

// Get godoc
// @Summary      Get a job listing
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// List godoc
// @Summary      List job listings
// @Tags         jobs
// @Produce      json
// @Param        offset      query     int     false  "Offset"
// @Param        limit       query     int     false  "Page size"
// @Param        status      query     string  false  "Filter by status"
// @Param        company_id  query     string  false  "Filter by company"
// @Param        job_type    query     string  false  "Filter by job type"
// @Param        remote_type query     string  false  "Filter by remote type"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page := listParams(c)

	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}

	filter := domain.JobFilter{CompanyID: companyID}
	if raw := c.Query("status"); raw != "" {
		status := domain.JobStatus(raw)
		if !status.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid status filter", nil)
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("job_type"); raw != "" {
		jobType := domain.JobType(raw)
		if !jobType.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid job_type filter", nil)
			return
		}
		filter.JobType = &jobType
	}
	if raw := c.Query("remote_type"); raw != "" {
		remoteType := domain.RemoteType(raw)
		if !remoteType.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid remote_type filter", nil)
			return
		}
		filter.RemoteType = &remoteType
	}

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", listData(jobs, total, page))
}

// Update godoc
// @Summary      Update a job listing
// @Description  Partial update; absent fields are left untouched
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string                 true  "Job ID"
// @Param        job  body      domain.JobListingUpdate true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var update domain.JobListingUpdate
	if !bindJSON(c, &update) {
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job listing
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
