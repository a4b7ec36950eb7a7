// model/student.go
package model

import (
	"time"
)

type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" binding:"required" validate:"required"`
	Email      string    `json:"email" binding:"required" validate:"required,email"`
	TechRole   string    `json:"tech_role"`
	TechSkills []string  `json:"tech_skills"`
	University string    `json:"university"`
	Major      string    `json:"major"`
	Bio        string    `json:"bio"`
	PhotoURL   string    `json:"photo_url"`
	OwnerID    string    `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type StudentSearchCriteria struct {
	Query  string
	Limit  int
	Offset int
}
