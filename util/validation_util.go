// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kada-connect/api/model"
)

// MaxSearchQueryLength bounds user-supplied search strings.
const MaxSearchQueryLength = 100

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func (v *ValidationUtil) ValidateCompany(company model.Company) error {
	if err := v.validate.Struct(company); err != nil {
		return fmt.Errorf("invalid company data: %w", err)
	}
	if strings.TrimSpace(company.Name) == "" {
		return fmt.Errorf("company name cannot be blank")
	}
	if strings.TrimSpace(company.Industry) == "" {
		return fmt.Errorf("company industry cannot be blank")
	}
	return nil
}

func (v *ValidationUtil) ValidateStudent(student model.Student) error {
	if err := v.validate.Struct(student); err != nil {
		return fmt.Errorf("invalid student data: %w", err)
	}
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("student name cannot be blank")
	}
	for _, skill := range student.TechSkills {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("tech skills cannot contain blank entries")
		}
	}
	return nil
}

// ValidateSearchQuery trims and bounds a user-supplied search string.
func (v *ValidationUtil) ValidateSearchQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", fmt.Errorf("search query cannot be empty")
	}
	if len(trimmed) > MaxSearchQueryLength {
		return "", fmt.Errorf("search query exceeds %d characters", MaxSearchQueryLength)
	}
	return trimmed, nil
}
