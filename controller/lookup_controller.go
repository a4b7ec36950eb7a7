// controller/lookup_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	kada_errors "github.com/kada-connect/api/errors"
	"github.com/kada-connect/api/middleware"
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/util"
)

type LookupController struct {
	lookupService service.ILookupService
}

func NewLookupController(lookupService service.ILookupService) *LookupController {
	return &LookupController{
		lookupService: lookupService,
	}
}

// RegisterRoutes registers the API routes for reference data
func (lc *LookupController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/industries", lc.GetIndustries)
	r.GET("/tech-roles", lc.GetTechRoles)
	r.GET("/tech-role-categories", lc.GetTechRoleCategories)
	r.GET("/tech-roles/category/:category", lc.GetTechRolesByCategory)
	r.GET("/universities", lc.GetUniversities)
	r.GET("/majors", lc.GetMajors)

	search := r.Group("/search", middleware.ValidateSearchQuery())
	{
		search.GET("/industries", lc.SearchIndustries)
		search.GET("/tech-roles", lc.SearchTechRoles)
		search.GET("/universities", lc.SearchUniversities)
		search.GET("/majors", lc.SearchMajors)
	}

	r.GET("/suggestions/tech-skills", lc.GetTechSkillSuggestions)
	r.POST("/validate/tech-skills", lc.ValidateTechSkills)

	r.GET("/lookup/all", lc.GetAllLookupData)

	popular := r.Group("/popular")
	{
		popular.GET("/industries", lc.GetPopularIndustries)
		popular.GET("/tech-roles", lc.GetPopularTechRoles)
		popular.GET("/tech-skills", lc.GetPopularTechSkills)
		popular.GET("/universities", lc.GetPopularUniversities)
		popular.GET("/majors", lc.GetPopularMajors)
	}

	r.POST("/cache/clear", middleware.AdminAuth(), lc.ClearCache)
	r.GET("/cache/status", lc.GetCacheStatus)
}

// GetIndustries endpoint
func (lc *LookupController) GetIndustries(c *gin.Context) {
	industries, err := lc.lookupService.GetIndustries(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve industries", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Industries retrieved successfully", industries)
}

// GetTechRoles endpoint
func (lc *LookupController) GetTechRoles(c *gin.Context) {
	roles, err := lc.lookupService.GetTechRoles(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tech roles", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Tech roles retrieved successfully", roles)
}

// GetTechRoleCategories endpoint
func (lc *LookupController) GetTechRoleCategories(c *gin.Context) {
	categories, err := lc.lookupService.GetTechRoleCategories(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tech role categories", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Tech role categories retrieved successfully", categories)
}

// GetTechRolesByCategory endpoint
func (lc *LookupController) GetTechRolesByCategory(c *gin.Context) {
	category := c.Param("category")

	roles, err := lc.lookupService.GetTechRolesByCategory(c, category)
	if err != nil {
		if errors.Is(err, kada_errors.ErrInvalidCategory) {
			util.RespondWithError(c, http.StatusBadRequest, "Category is required", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tech roles", err)
		}
		return
	}
	util.RespondWithData(c, http.StatusOK, "Tech roles retrieved successfully", roles)
}

// GetUniversities endpoint
func (lc *LookupController) GetUniversities(c *gin.Context) {
	universities, err := lc.lookupService.GetUniversities(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve universities", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Universities retrieved successfully", universities)
}

// GetMajors endpoint
func (lc *LookupController) GetMajors(c *gin.Context) {
	majors, err := lc.lookupService.GetMajors(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve majors", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Majors retrieved successfully", majors)
}

// SearchIndustries endpoint
func (lc *LookupController) SearchIndustries(c *gin.Context) {
	query := c.GetString("searchQuery")

	results, err := lc.lookupService.SearchIndustries(c, query)
	if err != nil {
		lc.respondSearchError(c, err, "Failed to search industries")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Industries search completed", results)
}

// SearchTechRoles endpoint
func (lc *LookupController) SearchTechRoles(c *gin.Context) {
	query := c.GetString("searchQuery")

	results, err := lc.lookupService.SearchTechRoles(c, query)
	if err != nil {
		lc.respondSearchError(c, err, "Failed to search tech roles")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Tech roles search completed", results)
}

// SearchUniversities endpoint
func (lc *LookupController) SearchUniversities(c *gin.Context) {
	query := c.GetString("searchQuery")

	results, err := lc.lookupService.SearchUniversities(c, query)
	if err != nil {
		lc.respondSearchError(c, err, "Failed to search universities")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Universities search completed", results)
}

// SearchMajors endpoint
func (lc *LookupController) SearchMajors(c *gin.Context) {
	query := c.GetString("searchQuery")

	results, err := lc.lookupService.SearchMajors(c, query)
	if err != nil {
		lc.respondSearchError(c, err, "Failed to search majors")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Majors search completed", results)
}

func (lc *LookupController) respondSearchError(c *gin.Context, err error, message string) {
	if errors.Is(err, kada_errors.ErrInvalidSearchQuery) || errors.Is(err, kada_errors.ErrSearchQueryTooLong) {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search query", err)
		return
	}
	util.RespondWithError(c, http.StatusInternalServerError, message, err)
}

// GetTechSkillSuggestions endpoint
func (lc *LookupController) GetTechSkillSuggestions(c *gin.Context) {
	query := c.Query("q")

	suggestions, err := lc.lookupService.GetTechSkillSuggestions(c, query)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve suggestions", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Tech skill suggestions retrieved successfully", suggestions)
}

type validateTechSkillsRequest struct {
	Skills []string `json:"skills"`
}

// ValidateTechSkills endpoint. An explicitly empty list is a valid request;
// a missing or non-list skills field is not.
func (lc *LookupController) ValidateTechSkills(c *gin.Context) {
	var req validateTechSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Skills == nil {
		util.RespondWithError(c, http.StatusBadRequest, "Skills must be a list of strings", kada_errors.ErrInvalidSkillPayload)
		return
	}

	result, err := lc.lookupService.ValidateTechSkills(c, req.Skills)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to validate tech skills", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Tech skills validated", result)
}

// GetAllLookupData endpoint
func (lc *LookupController) GetAllLookupData(c *gin.Context) {
	data, err := lc.lookupService.GetAllLookupData(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve lookup data", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Lookup data retrieved successfully", data)
}

// GetPopularIndustries endpoint
func (lc *LookupController) GetPopularIndustries(c *gin.Context) {
	items, err := lc.lookupService.GetPopularIndustries(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve popular industries", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Popular industries retrieved successfully", items)
}

// GetPopularTechRoles endpoint
func (lc *LookupController) GetPopularTechRoles(c *gin.Context) {
	items, err := lc.lookupService.GetPopularTechRoles(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve popular tech roles", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Popular tech roles retrieved successfully", items)
}

// GetPopularTechSkills endpoint
func (lc *LookupController) GetPopularTechSkills(c *gin.Context) {
	items, err := lc.lookupService.GetPopularTechSkills(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve popular tech skills", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Popular tech skills retrieved successfully", items)
}

// GetPopularUniversities endpoint
func (lc *LookupController) GetPopularUniversities(c *gin.Context) {
	items, err := lc.lookupService.GetPopularUniversities(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve popular universities", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Popular universities retrieved successfully", items)
}

// GetPopularMajors endpoint
func (lc *LookupController) GetPopularMajors(c *gin.Context) {
	items, err := lc.lookupService.GetPopularMajors(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve popular majors", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Popular majors retrieved successfully", items)
}

// ClearCache endpoint
func (lc *LookupController) ClearCache(c *gin.Context) {
	actorID, _ := util.GetUserIDFromContext(c)

	if err := lc.lookupService.ClearCache(c, actorID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to clear cache", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Cache cleared successfully", nil)
}

// GetCacheStatus endpoint
func (lc *LookupController) GetCacheStatus(c *gin.Context) {
	statuses, err := lc.lookupService.CacheStatus(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cache status", err)
		return
	}
	util.RespondWithData(c, http.StatusOK, "Cache status retrieved successfully", statuses)
}
