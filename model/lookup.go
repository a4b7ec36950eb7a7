// model/lookup.go
package model

import (
	"time"
)

// TechRole pairs a role name with its category (Frontend, Backend, ...).
type TechRole struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// PopularItem is a reference item annotated with how many profiles reference it.
type PopularItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SkillVerdict classifies a single submitted skill against the master list.
type SkillVerdict struct {
	Skill      string `json:"skill"`
	Recognized bool   `json:"recognized"`
}

// SkillValidationResult is the response payload for tech-skill validation.
type SkillValidationResult struct {
	Valid    bool           `json:"valid"`
	Verdicts []SkillVerdict `json:"verdicts"`
}

// AllLookupData bundles every list and popularity view into one payload.
type AllLookupData struct {
	Industries          []string      `json:"industries"`
	TechRoles           []TechRole    `json:"tech_roles"`
	TechRoleCategories  []string      `json:"tech_role_categories"`
	Universities        []string      `json:"universities"`
	Majors              []string      `json:"majors"`
	PopularIndustries   []PopularItem `json:"popular_industries"`
	PopularTechRoles    []PopularItem `json:"popular_tech_roles"`
	PopularTechSkills   []PopularItem `json:"popular_tech_skills"`
	PopularUniversities []PopularItem `json:"popular_universities"`
	PopularMajors       []PopularItem `json:"popular_majors"`
}

// CacheKeyStatus describes one populated cache entry for diagnostics.
type CacheKeyStatus struct {
	Key        string        `json:"key"`
	Age        time.Duration `json:"age"`
	Remaining  time.Duration `json:"remaining"`
	Valid      bool          `json:"valid"`
	ComputedAt time.Time     `json:"computed_at"`
}
