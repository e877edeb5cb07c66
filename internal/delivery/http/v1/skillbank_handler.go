package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type SkillBankHandler struct {
	bankUC domain.SkillBankUsecase
}

func NewSkillBankHandler(protected *gin.RouterGroup, bankUC domain.SkillBankUsecase) {
	handler := &SkillBankHandler{bankUC: bankUC}

	banks := protected.Group("/skill-banks")
	{
		banks.GET("/:user_id", handler.Get)
		banks.PUT("/:user_id", handler.Update)
	}
}

type UpdateSkillBankRequest struct {
	Content domain.JSONMap `json:"content" binding:"required"`
}

// Get godoc
// @Summary      Get a user's skill bank
// @Description  Only the owner may read their skill bank
// @Tags         skill-banks
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skill-banks/{user_id} [get]
// @Security     BearerAuth
func (h *SkillBankHandler) Get(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	bank, err := h.bankUC.GetSkillBank(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill bank", bank)
}

// Update godoc
// @Summary      Replace a user's skill bank
// @Description  Upserts the full document; only the owner may write it
// @Tags         skill-banks
// @Accept       json
// @Produce      json
// @Param        user_id  path      string                  true  "User ID"
// @Param        bank     body      UpdateSkillBankRequest  true  "Skill bank JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /skill-banks/{user_id} [put]
// @Security     BearerAuth
func (h *SkillBankHandler) Update(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req UpdateSkillBankRequest
	if !bindJSON(c, &req) {
		return
	}

	bank, err := h.bankUC.UpdateSkillBank(c.Request.Context(), userID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill bank updated", bank)
}

func pathUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid user_id format", nil)
		c.Abort()
		return uuid.Nil, false
	}
	return userID, true
}
