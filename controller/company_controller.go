// controller/company_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	kada_errors "github.com/kada-connect/api/errors"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/util"
	helper_util "github.com/kada-connect/api/util/helper"
)

type CompanyController struct {
	companyService service.ICompanyService
}

func NewCompanyController(companyService service.ICompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// RegisterRoutes registers the company CRUD routes
func (cc *CompanyController) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.POST("", cc.CreateCompany)
		companies.GET("", cc.ListCompanies)
		companies.GET("/search", cc.SearchCompanies)
		companies.GET("/:id", cc.GetCompany)
		companies.PUT("/:id", cc.UpdateCompany)
		companies.DELETE("/:id", cc.DeleteCompany)
	}
}

// CreateCompany endpoint
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", kada_errors.ErrUnauthorized)
		return
	}
	userRole, _ := util.GetUserRoleFromContext(c)

	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid company data", err)
		return
	}

	created, err := cc.companyService.CreateCompany(c, company, userID, userRole)
	if err != nil {
		cc.respondCompanyError(c, err, "Failed to create company")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "Company created successfully", created)
}

// GetCompany endpoint
func (cc *CompanyController) GetCompany(c *gin.Context) {
	companyID := c.Param("id")

	company, err := cc.companyService.GetCompany(c, companyID)
	if err != nil {
		cc.respondCompanyError(c, err, "Failed to retrieve company")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Company retrieved successfully", company)
}

// ListCompanies endpoint
func (cc *CompanyController) ListCompanies(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", kada_errors.ErrInvalidPagination)
		return
	}

	companies, err := cc.companyService.ListCompanies(c, limit, offset)
	if err != nil {
		cc.respondCompanyError(c, err, "Failed to list companies")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Companies retrieved successfully", companies)
}

// SearchCompanies endpoint
func (cc *CompanyController) SearchCompanies(c *gin.Context) {
	query := c.Query("q")
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", kada_errors.ErrInvalidPagination)
		return
	}

	companies, err := cc.companyService.SearchCompanies(c, query, limit, offset)
	if err != nil {
		cc.respondCompanyError(c, err, "Failed to search companies")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Companies search completed", companies)
}

// UpdateCompany endpoint
func (cc *CompanyController) UpdateCompany(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", kada_errors.ErrUnauthorized)
		return
	}
	userRole, _ := util.GetUserRoleFromContext(c)

	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid company data", err)
		return
	}
	company.ID = c.Param("id")

	updated, err := cc.companyService.UpdateCompany(c, company, userID, userRole)
	if err != nil {
		cc.respondCompanyError(c, err, "Failed to update company")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Company updated successfully", updated)
}

// DeleteCompany endpoint
func (cc *CompanyController) DeleteCompany(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", kada_errors.ErrUnauthorized)
		return
	}
	userRole, _ := util.GetUserRoleFromContext(c)

	companyID := c.Param("id")
	if err := cc.companyService.DeleteCompany(c, companyID, userID, userRole); err != nil {
		cc.respondCompanyError(c, err, "Failed to delete company")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Company deleted successfully", nil)
}

func (cc *CompanyController) respondCompanyError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, kada_errors.ErrCompanyNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Company not found", err)
	case errors.Is(err, kada_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, kada_errors.ErrInvalidCompanyData),
		errors.Is(err, kada_errors.ErrInvalidSearchQuery),
		errors.Is(err, kada_errors.ErrInvalidPagination):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, message, err)
	}
}
