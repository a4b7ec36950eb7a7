// controller/company_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/kada-connect/api/controller"
	kada_errors "github.com/kada-connect/api/errors"
	"github.com/kada-connect/api/middleware"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/test/mock"
)

func setupCompanyRouter(svc *mock.MockCompanyService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api")
	controller.NewCompanyController(svc).RegisterRoutes(api)
	return r
}

func TestCompanyController_Create(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("CreateCompany", tmock.Anything, tmock.Anything, "user-1", "company").
		Return(&model.Company{ID: "c-1", Name: "Acme", Industry: "Gaming"}, nil)
	router := setupCompanyRouter(svc)

	body := strings.NewReader(`{"name":"Acme","industry":"Gaming"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/companies", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Role", "company")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestCompanyController_Create_MissingIdentity(t *testing.T) {
	svc := new(mock.MockCompanyService)
	router := setupCompanyRouter(svc)

	body := strings.NewReader(`{"name":"Acme","industry":"Gaming"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/companies", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "CreateCompany")
}

func TestCompanyController_Create_InvalidBody(t *testing.T) {
	svc := new(mock.MockCompanyService)
	router := setupCompanyRouter(svc)

	body := strings.NewReader(`{"name":"Acme"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/companies", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Role", "company")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateCompany")
}

func TestCompanyController_Get(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("GetCompany", tmock.Anything, "c-1").
		Return(&model.Company{ID: "c-1", Name: "Acme"}, nil)
	router := setupCompanyRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/companies/c-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCompanyController_Get_NotFound(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("GetCompany", tmock.Anything, "nope").
		Return(nil, kada_errors.ErrCompanyNotFound)
	router := setupCompanyRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/companies/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
}

func TestCompanyController_List_Pagination(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("ListCompanies", tmock.Anything, 5, 10).
		Return([]*model.Company{}, nil)
	router := setupCompanyRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/companies?limit=5&offset=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCompanyController_Search(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("SearchCompanies", tmock.Anything, "acme", 10, 0).
		Return([]*model.Company{{ID: "c-1", Name: "Acme"}}, nil)
	router := setupCompanyRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/companies/search?q=acme", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCompanyController_Update_Forbidden(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("UpdateCompany", tmock.Anything, tmock.Anything, "user-2", "company").
		Return(nil, kada_errors.ErrForbidden)
	router := setupCompanyRouter(svc)

	body := strings.NewReader(`{"name":"Acme","industry":"Gaming"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/companies/c-1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-2")
	req.Header.Set("X-User-Role", "company")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCompanyController_Delete(t *testing.T) {
	svc := new(mock.MockCompanyService)
	svc.On("DeleteCompany", tmock.Anything, "c-1", "user-1", "company").Return(nil)
	router := setupCompanyRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/companies/c-1", nil)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Role", "company")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
