package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type TimelineHandler struct {
	timelineUC domain.TimelineUsecase
}

func NewTimelineHandler(protected *gin.RouterGroup, timelineUC domain.TimelineUsecase) {
	handler := &TimelineHandler{timelineUC: timelineUC}

	timeline := protected.Group("/timeline")
	{
		timeline.GET("", handler.List)
		timeline.GET("/:id", handler.Get)
		timeline.POST("", handler.Create)
		timeline.PUT("/:id", handler.Update)
		timeline.DELETE("/:id", handler.Delete)
	}
}

type CreateTimelineEventRequest struct {
	EventType string `json:"event_type" binding:"required"`
	Title     string `json:"title" binding:"required"`

	Description   *string        `json:"description"`
	JobID         *string        `json:"job_id" binding:"omitempty,uuid"`
	ApplicationID *string        `json:"application_id" binding:"omitempty,uuid"`
	EventData     domain.JSONMap `json:"event_data"`
	EventDate     *time.Time     `json:"event_date"`
	IsMilestone   bool           `json:"is_milestone"`
}

// Create godoc
// @Summary      Record a timeline event
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        event  body      CreateTimelineEventRequest  true  "Event JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /timeline [post]
// @Security     BearerAuth
func (h *TimelineHandler) Create(c *gin.Context) {
	var req CreateTimelineEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event := &domain.TimelineEvent{
		EventType:   domain.TimelineEventType(req.EventType),
		Title:       req.Title,
		Description: req.Description,
		EventData:   req.EventData,
		IsMilestone: req.IsMilestone,
	}
	if req.JobID != nil {
		jobID, _ := uuid.Parse(*req.JobID)
		event.JobID = &jobID
	}
	if req.ApplicationID != nil {
		applicationID, _ := uuid.Parse(*req.ApplicationID)
		event.ApplicationID = &applicationID
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}

	created, err := h.timelineUC.CreateEvent(c.Request.Context(), event)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline event recorded", created)
}

// Get godoc
// @Summary      Get a timeline event
// @Tags         timeline
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /timeline/{id} [get]
// @Security     BearerAuth
func (h *TimelineHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.timelineUC.GetEvent(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline event", event)
}

// List godoc
// @Summary      List the current user's timeline
// @Tags         timeline
// @Produce      json
// @Param        offset        query     int     false  "Offset"
// @Param        limit         query     int     false  "Page size"
// @Param        event_type    query     string  false  "Filter by event type"
// @Param        is_milestone  query     bool    false  "Filter milestones"
// @Param        job_id        query     string  false  "Filter by job"
// @Success      200  {object}  response.Response
// @Router       /timeline [get]
// @Security     BearerAuth
func (h *TimelineHandler) List(c *gin.Context) {
	page := listParams(c)

	jobID, ok := queryUUID(c, "job_id")
	if !ok {
		return
	}

	filter := domain.TimelineFilter{
		JobID:       jobID,
		IsMilestone: queryBool(c, "is_milestone"),
	}
	if raw := c.Query("event_type"); raw != "" {
		eventType := domain.TimelineEventType(raw)
		if !eventType.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid event_type filter", nil)
			return
		}
		filter.EventType = &eventType
	}

	events, total, err := h.timelineUC.ListEvents(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline", listData(events, total, page))
}

// Update godoc
// @Summary      Update a timeline event
// @Description  Partial update; absent fields are left untouched
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id     path      string                     true  "Event ID"
// @Param        event  body      domain.TimelineEventUpdate true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /timeline/{id} [put]
// @Security     BearerAuth
func (h *TimelineHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var update domain.TimelineEventUpdate
	if !bindJSON(c, &update) {
		return
	}

	event, err := h.timelineUC.UpdateEvent(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline event updated", event)
}

// Delete godoc
// @Summary      Delete a timeline event
// @Tags         timeline
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /timeline/{id} [delete]
// @Security     BearerAuth
func (h *TimelineHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.timelineUC.DeleteEvent(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline event deleted successfully", nil)
}
