// service/lookup_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/test/mock"
	"github.com/kada-connect/api/util"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func newLookupService(
	companies *mock.CountingCompanySource,
	students *mock.CountingStudentSource,
) *service.LookupService {
	return service.NewLookupService(
		companies,
		students,
		util.NewTTLCache(5*time.Minute),
		nil,
		nil,
		nil,
		20,
		10,
	)
}

func TestLookupService_Lists(t *testing.T) {
	svc := newLookupService(&mock.CountingCompanySource{}, &mock.CountingStudentSource{})
	ctx := context.Background()

	industries, err := svc.GetIndustries(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, industries)

	roles, err := svc.GetTechRoles(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, roles)

	categories, err := svc.GetTechRoleCategories(ctx)
	require.NoError(t, err)
	assert.Contains(t, categories, "Backend")
	assert.Contains(t, categories, "Frontend")

	// Categories keep first-occurrence order and carry no duplicates.
	seen := map[string]int{}
	for _, c := range categories {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "category %q appears more than once", c)
	}
}

func TestLookupService_GetTechRolesByCategory(t *testing.T) {
	svc := newLookupService(&mock.CountingCompanySource{}, &mock.CountingStudentSource{})
	ctx := context.Background()

	roles, err := svc.GetTechRolesByCategory(ctx, "backend")
	require.NoError(t, err)
	require.NotEmpty(t, roles)
	for _, role := range roles {
		assert.Equal(t, "Backend", role.Category)
	}

	// Unknown category is an empty result, not an error.
	roles, err = svc.GetTechRolesByCategory(ctx, "Astrology")
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)

	_, err = svc.GetTechRolesByCategory(ctx, "   ")
	assert.ErrorIs(t, err, kada_errors.ErrInvalidCategory)
}

func TestLookupService_SearchRanking(t *testing.T) {
	svc := newLookupService(&mock.CountingCompanySource{}, &mock.CountingStudentSource{})
	ctx := context.Background()

	// Exact match outranks prefix match regardless of collection order.
	suggestions, err := svc.GetTechSkillSuggestions(ctx, "Java")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(suggestions), 2)
	assert.Equal(t, "Java", suggestions[0])
	assert.Equal(t, "JavaScript", suggestions[1])

	// Prefix matches keep original collection order among themselves.
	results, err := svc.SearchIndustries(ctx, "fin")
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance", "Fintech"}, results)

	// Substring matches keep collection order among themselves.
	results, err = svc.SearchMajors(ctx, "engineering")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Software Engineering", results[0])
	assert.Contains(t, results, "Mechanical Engineering")

	roles, err := svc.SearchTechRoles(ctx, "developer")
	require.NoError(t, err)
	require.NotEmpty(t, roles)
	assert.Equal(t, "Frontend Developer", roles[0].Name)
}

func TestLookupService_SearchInvalidQuery(t *testing.T) {
	svc := newLookupService(&mock.CountingCompanySource{}, &mock.CountingStudentSource{})
	ctx := context.Background()

	for _, query := range []string{"", "   "} {
		_, err := svc.SearchIndustries(ctx, query)
		assert.ErrorIs(t, err, kada_errors.ErrInvalidSearchQuery)

		_, err = svc.SearchTechRoles(ctx, query)
		assert.ErrorIs(t, err, kada_errors.ErrInvalidSearchQuery)
	}
}

func TestLookupService_TechSkillSuggestionsDefault(t *testing.T) {
	svc := newLookupService(&mock.CountingCompanySource{}, &mock.CountingStudentSource{})

	suggestions, err := svc.GetTechSkillSuggestions(context.Background(), "  ")
	require.NoError(t, err)
	assert.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions, "JavaScript")
	assert.Contains(t, suggestions, "Python")
}

func TestLookupService_ValidateTechSkills(t *testing.T) {
	svc := newLookupService(&mock.CountingCompanySource{}, &mock.CountingStudentSource{})
	ctx := context.Background()

	result, err := svc.ValidateTechSkills(ctx, []string{"python", "Quantum Flux", "Docker"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Verdicts, 3)
	assert.True(t, result.Verdicts[0].Recognized)
	assert.False(t, result.Verdicts[1].Recognized)
	assert.True(t, result.Verdicts[2].Recognized)
	assert.Equal(t, "Quantum Flux", result.Verdicts[1].Skill)

	// Blank entries are reported unrecognized, not rejected.
	result, err = svc.ValidateTechSkills(ctx, []string{"  "})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.False(t, result.Verdicts[0].Recognized)

	// An empty candidate list is vacuously valid.
	result, err = svc.ValidateTechSkills(ctx, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Verdicts)
}

func TestLookupService_PopularIndustriesRanking(t *testing.T) {
	companies := &mock.CountingCompanySource{}
	for i := 0; i < 3; i++ {
		companies.Companies = append(companies.Companies, model.Company{Industry: "Finance"})
	}
	for i := 0; i < 5; i++ {
		companies.Companies = append(companies.Companies, model.Company{Industry: "Fintech"})
		companies.Companies = append(companies.Companies, model.Company{Industry: "E-commerce"})
	}
	svc := newLookupService(companies, &mock.CountingStudentSource{})

	items, err := svc.GetPopularIndustries(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(items), 3)

	// Ties keep collection order: Fintech precedes E-commerce at count 5.
	assert.Equal(t, model.PopularItem{Name: "Fintech", Count: 5}, items[0])
	assert.Equal(t, model.PopularItem{Name: "E-commerce", Count: 5}, items[1])
	assert.Equal(t, model.PopularItem{Name: "Finance", Count: 3}, items[2])
}

func TestLookupService_PopularityCached(t *testing.T) {
	companies := &mock.CountingCompanySource{
		Companies: []model.Company{{Industry: "Gaming"}},
	}
	svc := newLookupService(companies, &mock.CountingStudentSource{})
	ctx := context.Background()

	_, err := svc.GetPopularIndustries(ctx)
	require.NoError(t, err)
	_, err = svc.GetPopularIndustries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, companies.CallCount(), "second read must be served from cache")

	require.NoError(t, svc.ClearCache(ctx, "admin"))

	_, err = svc.GetPopularIndustries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, companies.CallCount(), "clear must force a recompute")
}

func TestLookupService_PopularitySourceError(t *testing.T) {
	companies := &mock.CountingCompanySource{Err: assert.AnError}
	svc := newLookupService(companies, &mock.CountingStudentSource{})

	_, err := svc.GetPopularIndustries(context.Background())
	assert.ErrorIs(t, err, kada_errors.ErrLookupDataUnavailable)
}

func TestLookupService_GetAllLookupData(t *testing.T) {
	companies := &mock.CountingCompanySource{
		Companies: []model.Company{{Industry: "Healthcare"}},
	}
	students := &mock.CountingStudentSource{
		Students: []model.Student{{
			TechRole:   "Backend Developer",
			TechSkills: []string{"Go", "PostgreSQL"},
			University: "KAIST",
			Major:      "Computer Science",
		}},
	}
	svc := newLookupService(companies, students)
	ctx := context.Background()

	data, err := svc.GetAllLookupData(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data.Industries)
	assert.NotEmpty(t, data.TechRoles)
	assert.NotEmpty(t, data.TechRoleCategories)
	assert.NotEmpty(t, data.Universities)
	assert.NotEmpty(t, data.Majors)
	assert.Equal(t, "Healthcare", data.PopularIndustries[0].Name)
	assert.Equal(t, "Backend Developer", data.PopularTechRoles[0].Name)
	assert.Equal(t, "KAIST", data.PopularUniversities[0].Name)

	companyScans := companies.CallCount()
	studentScans := students.CallCount()

	again, err := svc.GetAllLookupData(ctx)
	require.NoError(t, err)
	assert.Same(t, data, again)
	assert.Equal(t, companyScans, companies.CallCount())
	assert.Equal(t, studentScans, students.CallCount())
}

func TestLookupService_CacheStatus(t *testing.T) {
	companies := &mock.CountingCompanySource{
		Companies: []model.Company{{Industry: "Retail"}},
	}
	svc := newLookupService(companies, &mock.CountingStudentSource{})
	ctx := context.Background()

	statuses, err := svc.CacheStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, statuses)

	_, err = svc.GetPopularIndustries(ctx)
	require.NoError(t, err)

	statuses, err = svc.CacheStatus(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "popular-industries", statuses[0].Key)
	assert.True(t, statuses[0].Valid)

	require.NoError(t, svc.ClearCache(ctx, "admin"))
	statuses, err = svc.CacheStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
