// controller/controllers.go
package controller

import (
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/util"
)

type Controllers struct {
	Lookup  *LookupController
	Company *CompanyController
	Student *StudentController
	Proxy   *ProxyController
}

func InitializeControllers(services *service.Services, imageProxy *util.ImageProxy) *Controllers {
	return &Controllers{
		Lookup:  NewLookupController(services.Lookup),
		Company: NewCompanyController(services.Company),
		Student: NewStudentController(services.Student),
		Proxy:   NewProxyController(imageProxy),
	}
}
