// service/services.go
package service

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kada-connect/api/audit"
	"github.com/kada-connect/api/dao"
	"github.com/kada-connect/api/util"
)

type Services struct {
	Company ICompanyService
	Student IStudentService
	Lookup  ILookupService
}

func InitializeServices(
	pool *pgxpool.Pool,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	lookupCache *util.TTLCache,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	maxSearchResults int,
	popularLimit int,
) (*Services, error) {
	companyDAO := dao.NewCompanyDAO(pool, auditService)
	studentDAO := dao.NewStudentDAO(pool, auditService)

	services := &Services{
		Company: NewCompanyService(companyDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Student: NewStudentService(studentDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Lookup: NewLookupService(
			companyDAO,
			studentDAO,
			lookupCache,
			auditService,
			notificationSvc,
			eventBus,
			maxSearchResults,
			popularLimit,
		),
	}

	return services, nil
}
