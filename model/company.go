// model/company.go
package model

import (
	"time"
)

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" binding:"required" validate:"required"`
	Industry    string    `json:"industry" binding:"required" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Website     string    `json:"website" validate:"omitempty,url"`
	LogoURL     string    `json:"logo_url"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanySearchCriteria struct {
	Query  string
	Limit  int
	Offset int
}
