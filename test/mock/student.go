// test/mock/student.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kada-connect/api/model"
)

// MockStudentService is a mock implementation of service.IStudentService
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) CreateStudent(ctx context.Context, student model.Student, creatorID, creatorRole string) (*model.Student, error) {
	args := m.Called(ctx, student, creatorID, creatorRole)
	return studentOrNil(args, 0), args.Error(1)
}

func (m *MockStudentService) UpdateStudent(ctx context.Context, student model.Student, updaterID, updaterRole string) (*model.Student, error) {
	args := m.Called(ctx, student, updaterID, updaterRole)
	return studentOrNil(args, 0), args.Error(1)
}

func (m *MockStudentService) DeleteStudent(ctx context.Context, studentID, deleterID, deleterRole string) error {
	args := m.Called(ctx, studentID, deleterID, deleterRole)
	return args.Error(0)
}

func (m *MockStudentService) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	args := m.Called(ctx, studentID)
	return studentOrNil(args, 0), args.Error(1)
}

func (m *MockStudentService) ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	args := m.Called(ctx, limit, offset)
	return studentsOrNil(args, 0), args.Error(1)
}

func (m *MockStudentService) SearchStudents(ctx context.Context, query string, limit, offset int) ([]*model.Student, error) {
	args := m.Called(ctx, query, limit, offset)
	return studentsOrNil(args, 0), args.Error(1)
}

func studentOrNil(args mock.Arguments, index int) *model.Student {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).(*model.Student)
}

func studentsOrNil(args mock.Arguments, index int) []*model.Student {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).([]*model.Student)
}
