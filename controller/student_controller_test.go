// controller/student_controller_test.go
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

func setupStudentRouter(svc *mock.MockStudentService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api")
	controller.NewStudentController(svc).RegisterRoutes(api)
	return r
}

func TestStudentController_Create(t *testing.T) {
	svc := new(mock.MockStudentService)
	svc.On("CreateStudent", tmock.Anything, tmock.Anything, "user-1", "student").
		Return(&model.Student{ID: "s-1", Name: "Minji Kim", Email: "minji@example.com"}, nil)
	router := setupStudentRouter(svc)

	body := strings.NewReader(`{"name":"Minji Kim","email":"minji@example.com","tech_role":"Backend Developer"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/students", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Role", "student")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestStudentController_Create_MissingIdentity(t *testing.T) {
	svc := new(mock.MockStudentService)
	router := setupStudentRouter(svc)

	body := strings.NewReader(`{"name":"Minji Kim","email":"minji@example.com"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/students", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "CreateStudent")
}

func TestStudentController_Get_NotFound(t *testing.T) {
	svc := new(mock.MockStudentService)
	svc.On("GetStudent", tmock.Anything, "nope").
		Return(nil, kada_errors.ErrStudentNotFound)
	router := setupStudentRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/students/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentController_Search(t *testing.T) {
	svc := new(mock.MockStudentService)
	svc.On("SearchStudents", tmock.Anything, "backend", 10, 0).
		Return([]*model.Student{{ID: "s-1", Name: "Minji Kim"}}, nil)
	router := setupStudentRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/students/search?q=backend", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestStudentController_Delete_Forbidden(t *testing.T) {
	svc := new(mock.MockStudentService)
	svc.On("DeleteStudent", tmock.Anything, "s-1", "user-2", "student").
		Return(kada_errors.ErrForbidden)
	router := setupStudentRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/students/s-1", nil)
	req.Header.Set("X-User-ID", "user-2")
	req.Header.Set("X-User-Role", "student")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
