package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/validation"
)

// bindJSON binds the request body and answers validation failures with a
// field-level 422. Returns false when the request was already answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		response.Error(c, http.StatusUnprocessableEntity, "Validation failed", validation.FormatValidationErrors(vErrs))
	} else {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
	}
	c.Abort()
	return false
}

// pathID parses the :id path segment. Malformed ids are a validation
// failure, not a missing resource.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid ID format", nil)
		c.Abort()
		return uuid.Nil, false
	}
	return id, true
}

// listParams reads offset/limit query params; out-of-range values clamp
// rather than fail.
func listParams(c *gin.Context) domain.ListParams {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultPageSize)))

	return domain.ListParams{Offset: offset, Limit: limit}.Clamp()
}

func listData(items interface{}, total int64, page domain.ListParams) response.ListData {
	return response.ListData{
		Items:      items,
		TotalCount: total,
		Offset:     page.Offset,
		Limit:      page.Limit,
	}
}

// queryUUID parses an optional uuid-valued query param. The bool reports a
// malformed value, already answered with a 422.
func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid "+name+" format", nil)
		c.Abort()
		return nil, false
	}
	return &id, true
}

func queryString(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &val
}
