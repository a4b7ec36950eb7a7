// test/mock/company.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kada-connect/api/model"
)

// MockCompanyService is a mock implementation of service.ICompanyService
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, company model.Company, creatorID, creatorRole string) (*model.Company, error) {
	args := m.Called(ctx, company, creatorID, creatorRole)
	return companyOrNil(args, 0), args.Error(1)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, company model.Company, updaterID, updaterRole string) (*model.Company, error) {
	args := m.Called(ctx, company, updaterID, updaterRole)
	return companyOrNil(args, 0), args.Error(1)
}

func (m *MockCompanyService) DeleteCompany(ctx context.Context, companyID, deleterID, deleterRole string) error {
	args := m.Called(ctx, companyID, deleterID, deleterRole)
	return args.Error(0)
}

func (m *MockCompanyService) GetCompany(ctx context.Context, companyID string) (*model.Company, error) {
	args := m.Called(ctx, companyID)
	return companyOrNil(args, 0), args.Error(1)
}

func (m *MockCompanyService) ListCompanies(ctx context.Context, limit, offset int) ([]*model.Company, error) {
	args := m.Called(ctx, limit, offset)
	return companiesOrNil(args, 0), args.Error(1)
}

func (m *MockCompanyService) SearchCompanies(ctx context.Context, query string, limit, offset int) ([]*model.Company, error) {
	args := m.Called(ctx, query, limit, offset)
	return companiesOrNil(args, 0), args.Error(1)
}

func companyOrNil(args mock.Arguments, index int) *model.Company {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).(*model.Company)
}

func companiesOrNil(args mock.Arguments, index int) []*model.Company {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).([]*model.Company)
}
