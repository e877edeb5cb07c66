package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.GET("/:id", handler.Get)
		applications.POST("", handler.Create)
		applications.PUT("/:id", handler.Update)
		applications.DELETE("/:id", handler.Delete)
	}
}

type CreateApplicationRequest struct {
	JobID           string `json:"job_id" binding:"required,uuid"`
	InteractionType string `json:"interaction_type" binding:"required,oneof=viewed saved applied hidden"`

	ApplicationStatus *domain.ApplicationStatus `json:"application_status"`
	AppliedDate       *time.Time                `json:"applied_date"`
	SavedDate         *time.Time                `json:"saved_date"`
	ResumeVersion     *string                   `json:"resume_version"`
	CoverLetter       *string                   `json:"cover_letter"`
	Notes             *string                   `json:"notes"`
	JobSnapshot       domain.JSONMap            `json:"job_snapshot"`
}

// Create godoc
// @Summary      Record a job interaction
// @Description  Records a viewed/saved/applied/hidden interaction for the current user; one per (job, type)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      CreateApplicationRequest  true  "Interaction JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	jobID, _ := uuid.Parse(req.JobID)

	interaction := &domain.JobUserInteraction{
		JobID:           jobID,
		InteractionType: domain.InteractionType(req.InteractionType),
		AppliedDate:     req.AppliedDate,
		SavedDate:       req.SavedDate,
		ResumeVersion:   req.ResumeVersion,
		CoverLetter:     req.CoverLetter,
		Notes:           req.Notes,
		JobSnapshot:     req.JobSnapshot,
	}
	if req.ApplicationStatus != nil {
		interaction.ApplicationStatus = *req.ApplicationStatus
	}

	created, err := h.applicationUC.CreateApplication(c.Request.Context(), interaction)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application recorded", created)
}

// Get godoc
// @Summary      Get an interaction
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Interaction ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	interaction, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", interaction)
}

// List godoc
// @Summary      List the current user's interactions
// @Tags         applications
// @Produce      json
// @Param        offset            query     int     false  "Offset"
// @Param        limit             query     int     false  "Page size"
// @Param        status            query     string  false  "Filter by application status"
// @Param        job_id            query     string  false  "Filter by job"
// @Param        interaction_type  query     string  false  "Filter by interaction type"
// @Success      200  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	page := listParams(c)

	jobID, ok := queryUUID(c, "job_id")
	if !ok {
		return
	}

	filter := domain.InteractionFilter{JobID: jobID}
	if raw := c.Query("status"); raw != "" {
		status := domain.ApplicationStatus(raw)
		if !status.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid status filter", nil)
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("interaction_type"); raw != "" {
		interactionType := domain.InteractionType(raw)
		if !interactionType.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid interaction_type filter", nil)
			return
		}
		filter.InteractionType = &interactionType
	}

	interactions, total, err := h.applicationUC.ListApplications(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", listData(interactions, total, page))
}

// Update godoc
// @Summary      Update an interaction
// @Description  Partial update; absent fields are left untouched
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      string                   true  "Interaction ID"
// @Param        application  body      domain.InteractionUpdate true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var update domain.InteractionUpdate
	if !bindJSON(c, &update) {
		return
	}

	interaction, err := h.applicationUC.UpdateApplication(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", interaction)
}

// Delete godoc
// @Summary      Delete an interaction
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Interaction ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.applicationUC.DeleteApplication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted successfully", nil)
}
