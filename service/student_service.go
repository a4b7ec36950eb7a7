// service/student_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kada-connect/api/dao"
	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/rbac"
	"github.com/kada-connect/api/util"
)

// IStudentService defines the interface for student operations
type IStudentService interface {
	CreateStudent(ctx context.Context, student model.Student, creatorID, creatorRole string) (*model.Student, error)
	UpdateStudent(ctx context.Context, student model.Student, updaterID, updaterRole string) (*model.Student, error)
	DeleteStudent(ctx context.Context, studentID, deleterID, deleterRole string) error
	GetStudent(ctx context.Context, studentID string) (*model.Student, error)
	ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error)
	SearchStudents(ctx context.Context, query string, limit, offset int) ([]*model.Student, error)
}

// StudentService handles business logic for student operations
type StudentService struct {
	studentDAO      *dao.StudentDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IStudentService = &StudentService{}

// NewStudentService creates a new instance of StudentService
func NewStudentService(studentDAO *dao.StudentDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *StudentService {
	service := &StudentService{
		studentDAO:      studentDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("student.created", service.handleStudentCreated)
	eventBus.Subscribe("student.updated", service.handleStudentUpdated)
	eventBus.Subscribe("student.deleted", service.handleStudentDeleted)

	return service
}

func (s *StudentService) handleStudentCreated(ctx context.Context, event util.Event) error {
	student := event.Payload.(model.Student)
	logger.Info("Student created event received", zap.String("studentID", student.ID))

	if err := s.notificationSvc.NotifyStudentChange(ctx, "created", student); err != nil {
		logger.Warn("Failed to send student creation notification", zap.Error(err), zap.String("studentID", student.ID))
	}
	return nil
}

func (s *StudentService) handleStudentUpdated(ctx context.Context, event util.Event) error {
	student := event.Payload.(model.Student)
	logger.Info("Student updated event received", zap.String("studentID", student.ID))

	if err := s.notificationSvc.NotifyStudentChange(ctx, "updated", student); err != nil {
		logger.Warn("Failed to send student update notification", zap.Error(err), zap.String("studentID", student.ID))
	}
	return nil
}

func (s *StudentService) handleStudentDeleted(ctx context.Context, event util.Event) error {
	studentID := event.Payload.(string)
	logger.Info("Student deleted event received", zap.String("studentID", studentID))

	if err := s.notificationSvc.NotifyStudentChange(ctx, "deleted", model.Student{ID: studentID}); err != nil {
		logger.Warn("Failed to send student deletion notification", zap.Error(err), zap.String("studentID", studentID))
	}
	return nil
}

// CreateStudent handles the creation of a new student
func (s *StudentService) CreateStudent(ctx context.Context, student model.Student, creatorID, creatorRole string) (*model.Student, error) {
	if !rbac.HasPermission(creatorRole, rbac.ResourceStudent, rbac.ActionCreate, rbac.Context{UserID: creatorID}) {
		return nil, kada_errors.ErrForbidden
	}
	if err := s.validationUtil.ValidateStudent(student); err != nil {
		return nil, fmt.Errorf("%w: %v", kada_errors.ErrInvalidStudentData, err)
	}

	student.OwnerID = creatorID
	student.CreatedAt = time.Now()
	student.UpdatedAt = time.Now()

	studentID, err := s.studentDAO.CreateStudent(ctx, student)
	if err != nil {
		logger.Error("Error creating student", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}

	student.ID = studentID

	// Update cache
	if err := s.cacheService.SetStudent(ctx, student); err != nil {
		logger.Warn("Failed to cache student", zap.Error(err), zap.String("studentID", studentID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "student.created", student)

	logger.Info("Student created successfully", zap.String("studentID", studentID), zap.String("creatorID", creatorID))
	return &student, nil
}

// UpdateStudent handles updates to an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student model.Student, updaterID, updaterRole string) (*model.Student, error) {
	existing, err := s.studentDAO.GetStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if !rbac.HasPermission(updaterRole, rbac.ResourceStudent, rbac.ActionUpdate, rbac.Context{UserID: updaterID, OwnerID: existing.OwnerID}) {
		return nil, kada_errors.ErrForbidden
	}
	if err := s.validationUtil.ValidateStudent(student); err != nil {
		return nil, fmt.Errorf("%w: %v", kada_errors.ErrInvalidStudentData, err)
	}

	student.OwnerID = existing.OwnerID
	student.UpdatedAt = time.Now()

	updatedStudent, err := s.studentDAO.UpdateStudent(ctx, student)
	if err != nil {
		logger.Error("Error updating student", zap.Error(err), zap.String("studentID", student.ID), zap.String("updaterID", updaterID))
		return nil, err
	}

	// Update cache
	if err := s.cacheService.SetStudent(ctx, *updatedStudent); err != nil {
		logger.Warn("Failed to update student in cache", zap.Error(err), zap.String("studentID", student.ID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "student.updated", *updatedStudent)

	logger.Info("Student updated successfully", zap.String("studentID", student.ID), zap.String("updaterID", updaterID))
	return updatedStudent, nil
}

// DeleteStudent handles the deletion of a student
func (s *StudentService) DeleteStudent(ctx context.Context, studentID, deleterID, deleterRole string) error {
	existing, err := s.studentDAO.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if !rbac.HasPermission(deleterRole, rbac.ResourceStudent, rbac.ActionDelete, rbac.Context{UserID: deleterID, OwnerID: existing.OwnerID}) {
		return kada_errors.ErrForbidden
	}

	if err := s.studentDAO.DeleteStudent(ctx, studentID); err != nil {
		logger.Error("Error deleting student", zap.Error(err), zap.String("studentID", studentID), zap.String("deleterID", deleterID))
		return err
	}

	// Remove from cache
	if err := s.cacheService.DeleteStudent(ctx, studentID); err != nil {
		logger.Warn("Failed to delete student from cache", zap.Error(err), zap.String("studentID", studentID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "student.deleted", studentID)

	logger.Info("Student deleted successfully", zap.String("studentID", studentID), zap.String("deleterID", deleterID))
	return nil
}

// GetStudent retrieves a student by its ID
func (s *StudentService) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	// Try to get from cache first
	cachedStudent, err := s.cacheService.GetStudent(ctx, studentID)
	if err == nil && cachedStudent != nil {
		return cachedStudent, nil
	}

	student, err := s.studentDAO.GetStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, kada_errors.ErrStudentNotFound) {
			return nil, kada_errors.ErrStudentNotFound
		}
		logger.Error("Error retrieving student", zap.Error(err), zap.String("studentID", studentID))
		return nil, kada_errors.ErrInternalServer
	}

	// Update cache
	if err := s.cacheService.SetStudent(ctx, *student); err != nil {
		logger.Warn("Failed to cache student", zap.Error(err), zap.String("studentID", studentID))
	}

	return student, nil
}

// ListStudents retrieves students with pagination
func (s *StudentService) ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	students, err := s.studentDAO.ListStudents(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing students", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}

// SearchStudents searches for students based on a query string
func (s *StudentService) SearchStudents(ctx context.Context, query string, limit, offset int) ([]*model.Student, error) {
	trimmed, err := s.validationUtil.ValidateSearchQuery(query)
	if err != nil {
		return nil, kada_errors.ErrInvalidSearchQuery
	}

	students, err := s.studentDAO.SearchStudents(ctx, trimmed, limit, offset)
	if err != nil {
		logger.Error("Error searching students", zap.Error(err), zap.String("query", trimmed))
		return nil, fmt.Errorf("failed to search students: %w", err)
	}

	return students, nil
}
