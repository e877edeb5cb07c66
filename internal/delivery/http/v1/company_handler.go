package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.Get)
		companies.POST("", handler.Create)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`

	Domain       *string                     `json:"domain"`
	Industry     *string                     `json:"industry"`
	Size         *string                     `json:"size"`
	SizeCategory *domain.CompanySizeCategory `json:"size_category"`
	Location     *string                     `json:"location"`
	FoundedYear  *int                        `json:"founded_year" binding:"omitempty,gte=1800,max_current_year"`
	Website      *string                     `json:"website" binding:"omitempty,url"`
	Description  *string                     `json:"description"`
	Culture      *string                     `json:"culture"`

	Values   domain.StringList `json:"values"`
	Benefits domain.StringList `json:"benefits"`
}

// Create godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CreateCompanyRequest  true  "Company JSON"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company := &domain.Company{
		Name:         req.Name,
		Domain:       req.Domain,
		Industry:     req.Industry,
		Size:         req.Size,
		SizeCategory: req.SizeCategory,
		Location:     req.Location,
		FoundedYear:  req.FoundedYear,
		Website:      req.Website,
		Description:  req.Description,
		Culture:      req.Culture,
		Values:       req.Values,
		Benefits:     req.Benefits,
	}

	created, err := h.companyUC.CreateCompany(c.Request.Context(), company)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company created", created)
}

// Get godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details", company)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        offset         query     int     false  "Offset"
// @Param        limit          query     int     false  "Page size"
// @Param        industry       query     string  false  "Filter by industry"
// @Param        size_category  query     string  false  "Filter by size category"
// @Success      200  {object}  response.Response
// @Router       /companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) List(c *gin.Context) {
	page := listParams(c)

	filter := domain.CompanyFilter{Industry: queryString(c, "industry")}
	if raw := c.Query("size_category"); raw != "" {
		sizeCategory := domain.CompanySizeCategory(raw)
		if !sizeCategory.Valid() {
			response.Error(c, http.StatusUnprocessableEntity, "Invalid size_category filter", nil)
			return
		}
		filter.SizeCategory = &sizeCategory
	}

	companies, total, err := h.companyUC.ListCompanies(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company list", listData(companies, total, page))
}

// Update godoc
// @Summary      Update a company
// @Description  Partial update; absent fields are left untouched
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Company ID"
// @Param        company  body      domain.CompanyUpdate true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var update domain.CompanyUpdate
	if !bindJSON(c, &update) {
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), id, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.companyUC.DeleteCompany(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted successfully", nil)
}
