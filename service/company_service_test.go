// service/company_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	kada_errors "github.com/kada-connect/api/errors"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/util"
)

func newCompanyService() *service.CompanyService {
	return service.NewCompanyService(
		nil,
		util.NewValidationUtil(),
		util.NewCacheService(),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
}

func TestCompanyService_CreateForbiddenRole(t *testing.T) {
	svc := newCompanyService()

	company := model.Company{Name: "Acme", Industry: "Gaming"}
	_, err := svc.CreateCompany(context.Background(), company, "user-1", "student")
	assert.ErrorIs(t, err, kada_errors.ErrForbidden)

	_, err = svc.CreateCompany(context.Background(), company, "user-1", "")
	assert.ErrorIs(t, err, kada_errors.ErrForbidden)
}

func TestCompanyService_CreateInvalidData(t *testing.T) {
	svc := newCompanyService()

	// Missing required fields is rejected before any persistence happens.
	_, err := svc.CreateCompany(context.Background(), model.Company{Name: "Acme"}, "user-1", "company")
	assert.ErrorIs(t, err, kada_errors.ErrInvalidCompanyData)

	_, err = svc.CreateCompany(context.Background(), model.Company{
		Name:     "Acme",
		Industry: "Gaming",
		Website:  "not a url",
	}, "user-1", "company")
	assert.ErrorIs(t, err, kada_errors.ErrInvalidCompanyData)
}

func TestCompanyService_SearchInvalidQuery(t *testing.T) {
	svc := newCompanyService()

	_, err := svc.SearchCompanies(context.Background(), "   ", 10, 0)
	assert.ErrorIs(t, err, kada_errors.ErrInvalidSearchQuery)
}

func TestStudentService_CreateForbiddenRole(t *testing.T) {
	svc := service.NewStudentService(
		nil,
		util.NewValidationUtil(),
		util.NewCacheService(),
		util.NewNotificationService(),
		util.NewEventBus(),
	)

	student := model.Student{Name: "Minji Kim", Email: "minji@example.com"}
	_, err := svc.CreateStudent(context.Background(), student, "user-1", "company")
	assert.ErrorIs(t, err, kada_errors.ErrForbidden)

	_, err = svc.CreateStudent(context.Background(), model.Student{Name: "Minji Kim", Email: "nope"}, "user-1", "student")
	assert.ErrorIs(t, err, kada_errors.ErrInvalidStudentData)
}
