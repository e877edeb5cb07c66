package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type JobSourceHandler struct {
	sourceUC domain.JobSourceUsecase
}

func NewJobSourceHandler(protected *gin.RouterGroup, sourceUC domain.JobSourceUsecase) {
	handler := &JobSourceHandler{sourceUC: sourceUC}

	sources := protected.Group("/job-sources")
	{
		sources.GET("", handler.List)
		sources.GET("/:id", handler.Get)
		sources.POST("", handler.Create)
		sources.PUT("/:id", handler.Update)
		sources.DELETE("/:id", handler.Delete)
	}
}

type CreateJobSourceRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name"`
	BaseURL     string `json:"base_url" binding:"omitempty,url"`

	APIAvailable    bool           `json:"api_available"`
	ScrapingRules   domain.JSONMap `json:"scraping_rules"`
	RateLimitConfig domain.JSONMap `json:"rate_limit_config"`
	IsActive        *bool          `json:"is_active"`
}

// Create godoc
// @Summary      Register a job source
// @Tags         job-sources
// @Accept       json
// @Produce      json
// @Param        source  body      CreateJobSourceRequest  true  "Source JSON"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /job-sources [post]
// @Security     BearerAuth
func (h *JobSourceHandler) Create(c *gin.Context) {
	var req CreateJobSourceRequest
	if !bindJSON(c, &req) {
		return
	}

	source := &domain.JobSource{
		Name:            req.Name,
		DisplayName:     req.DisplayName,
		BaseURL:         req.BaseURL,
		APIAvailable:    req.APIAvailable,
		ScrapingRules:   req.ScrapingRules,
		RateLimitConfig: req.RateLimitConfig,
		IsActive:        true,
	}
	if req.IsActive != nil {
		source.IsActive = *req.IsActive
	}

	created, err := h.sourceUC.CreateSource(c.Request.Context(), source)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job source created", created)
}

// Get godoc
// @Summary      Get a job source
// @Tags         job-sources
// @Produce      json
// @Param        id   path      string  true  "Source ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-sources/{id} [get]
// @Security     BearerAuth
func (h *JobSourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	source, err := h.sourceUC.GetSource(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job source details", source)
}

// List godoc
// @Summary      List job sources
// @Tags         job-sources
// @Produce      json
// @Param        offset  query     int  false  "Offset"
// @Param        limit   query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /job-sources [get]
// @Security     BearerAuth
func (h *JobSourceHandler) List(c *gin.Context) {
	page := listParams(c)

	sources, total, err := h.sourceUC.ListSources(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job source list", listData(sources, total, page))
}

// Update godoc
// @Summary      Update a job source
// @Description  Partial update; absent fields are left untouched
// @Tags         job-sources
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Source ID"
// @Param        source  body      domain.JobSourceUpdate true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-sources/{id} [put]
// @Security     BearerAuth
func (h *JobSourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var update domain.JobSourceUpdate
	if !bindJSON(c, &update) {
		return
	}

	source, err := h.sourceUC.UpdateSource(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job source updated", source)
}

// Delete godoc
// @Summary      Delete a job source
// @Tags         job-sources
// @Produce      json
// @Param        id   path      string  true  "Source ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-sources/{id} [delete]
// @Security     BearerAuth
func (h *JobSourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.sourceUC.DeleteSource(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job source deleted successfully", nil)
}
