// test/mock/lookup.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kada-connect/api/model"
)

// MockLookupService is a mock implementation of service.ILookupService
type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) GetIndustries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetTechRoles(ctx context.Context) ([]model.TechRole, error) {
	args := m.Called(ctx)
	return techRolesOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetTechRoleCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetTechRolesByCategory(ctx context.Context, category string) ([]model.TechRole, error) {
	args := m.Called(ctx, category)
	return techRolesOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetUniversities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetMajors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) SearchIndustries(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) SearchTechRoles(ctx context.Context, query string) ([]model.TechRole, error) {
	args := m.Called(ctx, query)
	return techRolesOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) SearchUniversities(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) SearchMajors(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetTechSkillSuggestions(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	return stringsOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) ValidateTechSkills(ctx context.Context, skills []string) (*model.SkillValidationResult, error) {
	args := m.Called(ctx, skills)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SkillValidationResult), args.Error(1)
}

func (m *MockLookupService) GetPopularIndustries(ctx context.Context) ([]model.PopularItem, error) {
	args := m.Called(ctx)
	return popularOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetPopularTechRoles(ctx context.Context) ([]model.PopularItem, error) {
	args := m.Called(ctx)
	return popularOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetPopularTechSkills(ctx context.Context) ([]model.PopularItem, error) {
	args := m.Called(ctx)
	return popularOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetPopularUniversities(ctx context.Context) ([]model.PopularItem, error) {
	args := m.Called(ctx)
	return popularOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetPopularMajors(ctx context.Context) ([]model.PopularItem, error) {
	args := m.Called(ctx)
	return popularOrNil(args, 0), args.Error(1)
}

func (m *MockLookupService) GetAllLookupData(ctx context.Context) (*model.AllLookupData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AllLookupData), args.Error(1)
}

func (m *MockLookupService) ClearCache(ctx context.Context, actorID string) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}

func (m *MockLookupService) CacheStatus(ctx context.Context) ([]model.CacheKeyStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CacheKeyStatus), args.Error(1)
}

func stringsOrNil(args mock.Arguments, index int) []string {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).([]string)
}

func techRolesOrNil(args mock.Arguments, index int) []model.TechRole {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).([]model.TechRole)
}

func popularOrNil(args mock.Arguments, index int) []model.PopularItem {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).([]model.PopularItem)
}
