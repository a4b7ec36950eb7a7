// test/mock/sources.go
package mock

import (
	"context"
	"sync"

	"github.com/kada-connect/api/model"
)

// CountingCompanySource serves a fixed company slice and counts scans.
type CountingCompanySource struct {
	mu        sync.Mutex
	Companies []model.Company
	Err       error
	Calls     int
}

func (s *CountingCompanySource) ListAllCompanies(ctx context.Context) ([]model.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Companies, nil
}

func (s *CountingCompanySource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

// CountingStudentSource serves a fixed student slice and counts scans.
type CountingStudentSource struct {
	mu       sync.Mutex
	Students []model.Student
	Err      error
	Calls    int
}

func (s *CountingStudentSource) ListAllStudents(ctx context.Context) ([]model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Students, nil
}

func (s *CountingStudentSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}
