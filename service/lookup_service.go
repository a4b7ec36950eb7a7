// service/lookup_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kada-connect/api/audit"
	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/util"
)

// Cache keys for the expensive derived views.
const (
	cacheKeyPopularIndustries   = "popular-industries"
	cacheKeyPopularTechRoles    = "popular-tech-roles"
	cacheKeyPopularTechSkills   = "popular-tech-skills"
	cacheKeyPopularUniversities = "popular-universities"
	cacheKeyPopularMajors       = "popular-majors"
	cacheKeyAllLookupData       = "all-lookup-data"
)

// CompanySource supplies the current company collection for popularity scans.
type CompanySource interface {
	ListAllCompanies(ctx context.Context) ([]model.Company, error)
}

// StudentSource supplies the current student collection for popularity scans.
type StudentSource interface {
	ListAllStudents(ctx context.Context) ([]model.Student, error)
}

// ILookupService defines the interface for reference data operations
type ILookupService interface {
	GetIndustries(ctx context.Context) ([]string, error)
	GetTechRoles(ctx context.Context) ([]model.TechRole, error)
	GetTechRoleCategories(ctx context.Context) ([]string, error)
	GetTechRolesByCategory(ctx context.Context, category string) ([]model.TechRole, error)
	GetUniversities(ctx context.Context) ([]string, error)
	GetMajors(ctx context.Context) ([]string, error)

	SearchIndustries(ctx context.Context, query string) ([]string, error)
	SearchTechRoles(ctx context.Context, query string) ([]model.TechRole, error)
	SearchUniversities(ctx context.Context, query string) ([]string, error)
	SearchMajors(ctx context.Context, query string) ([]string, error)

	GetTechSkillSuggestions(ctx context.Context, query string) ([]string, error)
	ValidateTechSkills(ctx context.Context, skills []string) (*model.SkillValidationResult, error)

	GetPopularIndustries(ctx context.Context) ([]model.PopularItem, error)
	GetPopularTechRoles(ctx context.Context) ([]model.PopularItem, error)
	GetPopularTechSkills(ctx context.Context) ([]model.PopularItem, error)
	GetPopularUniversities(ctx context.Context) ([]model.PopularItem, error)
	GetPopularMajors(ctx context.Context) ([]model.PopularItem, error)

	GetAllLookupData(ctx context.Context) (*model.AllLookupData, error)

	ClearCache(ctx context.Context, actorID string) error
	CacheStatus(ctx context.Context) ([]model.CacheKeyStatus, error)
}

// LookupService answers list/search/popularity queries over the static
// reference collections and keeps a TTL cache of the derived views.
type LookupService struct {
	companies       CompanySource
	students        StudentSource
	cache           *util.TTLCache
	auditService    audit.Service
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	maxResults      int
	popularLimit    int
}

var _ ILookupService = &LookupService{}

// NewLookupService creates a new instance of LookupService
func NewLookupService(
	companies CompanySource,
	students StudentSource,
	cache *util.TTLCache,
	auditService audit.Service,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	maxResults int,
	popularLimit int,
) *LookupService {
	return &LookupService{
		companies:       companies,
		students:        students,
		cache:           cache,
		auditService:    auditService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		maxResults:      maxResults,
		popularLimit:    popularLimit,
	}
}

// List operations

func (s *LookupService) GetIndustries(ctx context.Context) ([]string, error) {
	return industries, nil
}

func (s *LookupService) GetTechRoles(ctx context.Context) ([]model.TechRole, error) {
	return techRoles, nil
}

func (s *LookupService) GetTechRoleCategories(ctx context.Context) ([]string, error) {
	return techRoleCategories(), nil
}

// GetTechRolesByCategory filters roles by category, case-insensitively. An
// unknown category yields an empty collection, not an error.
func (s *LookupService) GetTechRolesByCategory(ctx context.Context, category string) ([]model.TechRole, error) {
	if strings.TrimSpace(category) == "" {
		return nil, kada_errors.ErrInvalidCategory
	}
	matched := []model.TechRole{}
	for _, role := range techRoles {
		if strings.EqualFold(role.Category, category) {
			matched = append(matched, role)
		}
	}
	return matched, nil
}

func (s *LookupService) GetUniversities(ctx context.Context) ([]string, error) {
	return universities, nil
}

func (s *LookupService) GetMajors(ctx context.Context) ([]string, error) {
	return majors, nil
}

// Search operations

func (s *LookupService) SearchIndustries(ctx context.Context, query string) ([]string, error) {
	return s.searchStrings(industries, query)
}

func (s *LookupService) SearchTechRoles(ctx context.Context, query string) ([]model.TechRole, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, kada_errors.ErrInvalidSearchQuery
	}
	indexes := rankIndexes(techRoleNames(), trimmed, s.maxResults)
	matched := make([]model.TechRole, len(indexes))
	for i, idx := range indexes {
		matched[i] = techRoles[idx]
	}
	return matched, nil
}

func (s *LookupService) SearchUniversities(ctx context.Context, query string) ([]string, error) {
	return s.searchStrings(universities, query)
}

func (s *LookupService) SearchMajors(ctx context.Context, query string) ([]string, error) {
	return s.searchStrings(majors, query)
}

func (s *LookupService) searchStrings(collection []string, query string) ([]string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, kada_errors.ErrInvalidSearchQuery
	}
	return rankStrings(collection, trimmed, s.maxResults), nil
}

// GetTechSkillSuggestions ranks candidate skills for a partial query,
// defaulting to the curated popular-skills seed when no query is supplied.
func (s *LookupService) GetTechSkillSuggestions(ctx context.Context, query string) ([]string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return popularSkillsSeed, nil
	}
	return rankStrings(masterTechSkills, trimmed, s.maxResults), nil
}

// ValidateTechSkills classifies each candidate against the master skill
// list. Malformed entries are reported as unrecognized, never as request
// errors.
func (s *LookupService) ValidateTechSkills(ctx context.Context, skills []string) (*model.SkillValidationResult, error) {
	result := &model.SkillValidationResult{
		Valid:    true,
		Verdicts: make([]model.SkillVerdict, len(skills)),
	}
	for i, skill := range skills {
		recognized := false
		trimmed := strings.TrimSpace(skill)
		if trimmed != "" {
			for _, known := range masterTechSkills {
				if strings.EqualFold(known, trimmed) {
					recognized = true
					break
				}
			}
		}
		result.Verdicts[i] = model.SkillVerdict{Skill: skill, Recognized: recognized}
		if !recognized {
			result.Valid = false
		}
	}
	return result, nil
}

// Popularity ranking

func (s *LookupService) GetPopularIndustries(ctx context.Context) ([]model.PopularItem, error) {
	return s.popularFromCache(ctx, cacheKeyPopularIndustries, func(ctx context.Context) ([]model.PopularItem, error) {
		companies, err := s.companies.ListAllCompanies(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kada_errors.ErrLookupDataUnavailable, err)
		}
		refs := make([]string, len(companies))
		for i, c := range companies {
			refs[i] = c.Industry
		}
		return rankPopularity(industries, refs, s.popularLimit), nil
	})
}

func (s *LookupService) GetPopularTechRoles(ctx context.Context) ([]model.PopularItem, error) {
	return s.popularFromCache(ctx, cacheKeyPopularTechRoles, func(ctx context.Context) ([]model.PopularItem, error) {
		students, err := s.students.ListAllStudents(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kada_errors.ErrLookupDataUnavailable, err)
		}
		refs := make([]string, len(students))
		for i, st := range students {
			refs[i] = st.TechRole
		}
		return rankPopularity(techRoleNames(), refs, s.popularLimit), nil
	})
}

func (s *LookupService) GetPopularTechSkills(ctx context.Context) ([]model.PopularItem, error) {
	return s.popularFromCache(ctx, cacheKeyPopularTechSkills, func(ctx context.Context) ([]model.PopularItem, error) {
		students, err := s.students.ListAllStudents(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kada_errors.ErrLookupDataUnavailable, err)
		}
		var refs []string
		for _, st := range students {
			refs = append(refs, st.TechSkills...)
		}
		return rankPopularity(masterTechSkills, refs, s.popularLimit), nil
	})
}

func (s *LookupService) GetPopularUniversities(ctx context.Context) ([]model.PopularItem, error) {
	return s.popularFromCache(ctx, cacheKeyPopularUniversities, func(ctx context.Context) ([]model.PopularItem, error) {
		students, err := s.students.ListAllStudents(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kada_errors.ErrLookupDataUnavailable, err)
		}
		refs := make([]string, len(students))
		for i, st := range students {
			refs[i] = st.University
		}
		return rankPopularity(universities, refs, s.popularLimit), nil
	})
}

func (s *LookupService) GetPopularMajors(ctx context.Context) ([]model.PopularItem, error) {
	return s.popularFromCache(ctx, cacheKeyPopularMajors, func(ctx context.Context) ([]model.PopularItem, error) {
		students, err := s.students.ListAllStudents(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kada_errors.ErrLookupDataUnavailable, err)
		}
		refs := make([]string, len(students))
		for i, st := range students {
			refs[i] = st.Major
		}
		return rankPopularity(majors, refs, s.popularLimit), nil
	})
}

// popularFromCache serves a cached view when valid and recomputes
// synchronously otherwise. Concurrent recomputation for the same key is
// idempotent, so no coordination is needed beyond the cache's own lock.
func (s *LookupService) popularFromCache(
	ctx context.Context,
	key string,
	compute func(context.Context) ([]model.PopularItem, error),
) ([]model.PopularItem, error) {
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]model.PopularItem), nil
	}
	items, err := compute(ctx)
	if err != nil {
		logger.Error("Failed to compute popularity ranking", zap.Error(err), zap.String("key", key))
		return nil, err
	}
	s.cache.Set(key, items)
	return items, nil
}

// rankPopularity counts how many profile references each item has, sorts
// descending by count with ties broken by original collection order, and
// truncates to limit.
func rankPopularity(items []string, refs []string, limit int) []model.PopularItem {
	counts := make([]int, len(items))
	for _, ref := range refs {
		for i, item := range items {
			if strings.EqualFold(item, ref) {
				counts[i]++
				break
			}
		}
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	ranked := make([]model.PopularItem, len(order))
	for i, idx := range order {
		ranked[i] = model.PopularItem{Name: items[idx], Count: counts[idx]}
	}
	return ranked
}

// Aggregate fetch

// GetAllLookupData combines every list and popularity view into one payload,
// cached as a unit because it invokes every other expensive operation.
func (s *LookupService) GetAllLookupData(ctx context.Context) (*model.AllLookupData, error) {
	if cached, ok := s.cache.Get(cacheKeyAllLookupData); ok {
		return cached.(*model.AllLookupData), nil
	}

	popularIndustries, err := s.GetPopularIndustries(ctx)
	if err != nil {
		return nil, err
	}
	popularTechRoles, err := s.GetPopularTechRoles(ctx)
	if err != nil {
		return nil, err
	}
	popularTechSkills, err := s.GetPopularTechSkills(ctx)
	if err != nil {
		return nil, err
	}
	popularUniversities, err := s.GetPopularUniversities(ctx)
	if err != nil {
		return nil, err
	}
	popularMajors, err := s.GetPopularMajors(ctx)
	if err != nil {
		return nil, err
	}

	data := &model.AllLookupData{
		Industries:          industries,
		TechRoles:           techRoles,
		TechRoleCategories:  techRoleCategories(),
		Universities:        universities,
		Majors:              majors,
		PopularIndustries:   popularIndustries,
		PopularTechRoles:    popularTechRoles,
		PopularTechSkills:   popularTechSkills,
		PopularUniversities: popularUniversities,
		PopularMajors:       popularMajors,
	}
	s.cache.Set(cacheKeyAllLookupData, data)
	return data, nil
}

// Cache management

// ClearCache discards all cache entries unconditionally. Authorization is
// enforced by the admin middleware before this is reached.
func (s *LookupService) ClearCache(ctx context.Context, actorID string) error {
	s.cache.Clear()

	if s.auditService != nil {
		details, _ := json.Marshal(map[string]string{"scope": "all"})
		auditLog := audit.AuditLog{
			Timestamp:  time.Now(),
			ActorID:    actorID,
			Action:     "clear",
			Resource:   "cache",
			ResourceID: "lookup",
			Success:    true,
			Details:    details,
		}
		if err := s.auditService.LogAction(ctx, auditLog); err != nil {
			logger.Warn("Failed to audit cache clear", zap.Error(err))
		}
	}

	if s.notificationSvc != nil {
		if err := s.notificationSvc.NotifyAdmins(ctx, "lookup cache cleared"); err != nil {
			logger.Warn("Failed to notify admins of cache clear", zap.Error(err))
		}
	}
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, "lookup.cache_cleared", actorID)
	}

	logger.Info("Lookup cache cleared", zap.String("actorID", actorID))
	return nil
}

// CacheStatus reports age, remaining TTL and validity for every populated
// cache key.
func (s *LookupService) CacheStatus(ctx context.Context) ([]model.CacheKeyStatus, error) {
	return s.cache.Status(), nil
}
