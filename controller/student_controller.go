// controller/student_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	kada_errors "github.com/kada-connect/api/errors"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/util"
	helper_util "github.com/kada-connect/api/util/helper"
)

type StudentController struct {
	studentService service.IStudentService
}

func NewStudentController(studentService service.IStudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterRoutes registers the student CRUD routes
func (sc *StudentController) RegisterRoutes(r *gin.RouterGroup) {
	students := r.Group("/students")
	{
		students.POST("", sc.CreateStudent)
		students.GET("", sc.ListStudents)
		students.GET("/search", sc.SearchStudents)
		students.GET("/:id", sc.GetStudent)
		students.PUT("/:id", sc.UpdateStudent)
		students.DELETE("/:id", sc.DeleteStudent)
	}
}

// CreateStudent endpoint
func (sc *StudentController) CreateStudent(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", kada_errors.ErrUnauthorized)
		return
	}
	userRole, _ := util.GetUserRoleFromContext(c)

	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid student data", err)
		return
	}

	created, err := sc.studentService.CreateStudent(c, student, userID, userRole)
	if err != nil {
		sc.respondStudentError(c, err, "Failed to create student")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "Student created successfully", created)
}

// GetStudent endpoint
func (sc *StudentController) GetStudent(c *gin.Context) {
	studentID := c.Param("id")

	student, err := sc.studentService.GetStudent(c, studentID)
	if err != nil {
		sc.respondStudentError(c, err, "Failed to retrieve student")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Student retrieved successfully", student)
}

// ListStudents endpoint
func (sc *StudentController) ListStudents(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", kada_errors.ErrInvalidPagination)
		return
	}

	students, err := sc.studentService.ListStudents(c, limit, offset)
	if err != nil {
		sc.respondStudentError(c, err, "Failed to list students")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Students retrieved successfully", students)
}

// SearchStudents endpoint
func (sc *StudentController) SearchStudents(c *gin.Context) {
	query := c.Query("q")
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", kada_errors.ErrInvalidPagination)
		return
	}

	students, err := sc.studentService.SearchStudents(c, query, limit, offset)
	if err != nil {
		sc.respondStudentError(c, err, "Failed to search students")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Students search completed", students)
}

// UpdateStudent endpoint
func (sc *StudentController) UpdateStudent(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", kada_errors.ErrUnauthorized)
		return
	}
	userRole, _ := util.GetUserRoleFromContext(c)

	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid student data", err)
		return
	}
	student.ID = c.Param("id")

	updated, err := sc.studentService.UpdateStudent(c, student, userID, userRole)
	if err != nil {
		sc.respondStudentError(c, err, "Failed to update student")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Student updated successfully", updated)
}

// DeleteStudent endpoint
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", kada_errors.ErrUnauthorized)
		return
	}
	userRole, _ := util.GetUserRoleFromContext(c)

	studentID := c.Param("id")
	if err := sc.studentService.DeleteStudent(c, studentID, userID, userRole); err != nil {
		sc.respondStudentError(c, err, "Failed to delete student")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Student deleted successfully", nil)
}

func (sc *StudentController) respondStudentError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, kada_errors.ErrStudentNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Student not found", err)
	case errors.Is(err, kada_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Permission denied", err)
	case errors.Is(err, kada_errors.ErrInvalidStudentData),
		errors.Is(err, kada_errors.ErrInvalidSearchQuery),
		errors.Is(err, kada_errors.ErrInvalidPagination):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, message, err)
	}
}
