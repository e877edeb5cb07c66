package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.GET("/:id", handler.Get)
		resumes.POST("", handler.Create)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
	}
}

type CreateResumeRequest struct {
	Title   string         `json:"title" binding:"required"`
	Content domain.JSONMap `json:"content"`
}

// Create godoc
// @Summary      Create a resume
// @Description  Stores the resume document for the current user; the content is opaque and round-trips losslessly
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        resume  body      CreateResumeRequest  true  "Resume JSON"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	resume := &domain.Resume{
		Title:   req.Title,
		Content: req.Content,
	}

	created, err := h.resumeUC.CreateResume(c.Request.Context(), resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume created", created)
}

// Get godoc
// @Summary      Get a resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", resume)
}

// List godoc
// @Summary      List the current user's resumes
// @Tags         resumes
// @Produce      json
// @Param        offset  query     int  false  "Offset"
// @Param        limit   query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	page := listParams(c)

	resumes, total, err := h.resumeUC.ListResumes(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume list", listData(resumes, total, page))
}

// Update godoc
// @Summary      Update a resume
// @Description  Partial update; absent fields are left untouched
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "Resume ID"
// @Param        resume  body      domain.ResumeUpdate true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var update domain.ResumeUpdate
	if !bindJSON(c, &update) {
		return
	}

	resume, err := h.resumeUC.UpdateResume(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.resumeUC.DeleteResume(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted successfully", nil)
}
