// service/lookup_data.go
package service

import "github.com/kada-connect/api/model"

// Static reference collections. Loaded once, immutable for the process
// lifetime; definition order is the tie-break order for search and
// popularity ranking.

var industries = []string{
	"Information Technology",
	"Software Development",
	"Finance",
	"Fintech",
	"E-commerce",
	"Healthcare",
	"Education",
	"Manufacturing",
	"Telecommunications",
	"Logistics",
	"Gaming",
	"Media & Entertainment",
	"Consulting",
	"Energy",
	"Automotive",
	"Retail",
	"Travel & Hospitality",
	"Real Estate",
	"Agriculture",
	"Government",
}

var techRoles = []model.TechRole{
	{Name: "Frontend Developer", Category: "Frontend"},
	{Name: "React Developer", Category: "Frontend"},
	{Name: "Vue Developer", Category: "Frontend"},
	{Name: "Backend Developer", Category: "Backend"},
	{Name: "Node.js Developer", Category: "Backend"},
	{Name: "Java Developer", Category: "Backend"},
	{Name: "Go Developer", Category: "Backend"},
	{Name: "Python Developer", Category: "Backend"},
	{Name: "Full Stack Developer", Category: "Full Stack"},
	{Name: "Mobile Developer", Category: "Mobile"},
	{Name: "iOS Developer", Category: "Mobile"},
	{Name: "Android Developer", Category: "Mobile"},
	{Name: "Flutter Developer", Category: "Mobile"},
	{Name: "Data Analyst", Category: "Data"},
	{Name: "Data Engineer", Category: "Data"},
	{Name: "Data Scientist", Category: "Data"},
	{Name: "Machine Learning Engineer", Category: "Data"},
	{Name: "DevOps Engineer", Category: "DevOps"},
	{Name: "Cloud Engineer", Category: "DevOps"},
	{Name: "Site Reliability Engineer", Category: "DevOps"},
	{Name: "Security Engineer", Category: "Security"},
	{Name: "QA Engineer", Category: "QA"},
	{Name: "Test Automation Engineer", Category: "QA"},
	{Name: "UI/UX Designer", Category: "Design"},
	{Name: "Product Designer", Category: "Design"},
	{Name: "Product Manager", Category: "Product"},
	{Name: "Project Manager", Category: "Product"},
}

var universities = []string{
	"Seoul National University",
	"KAIST",
	"Yonsei University",
	"Korea University",
	"Sungkyunkwan University",
	"Hanyang University",
	"POSTECH",
	"Ewha Womans University",
	"Kyung Hee University",
	"Sogang University",
	"Chung-Ang University",
	"Inha University",
	"Konkuk University",
	"Pusan National University",
	"Chonnam National University",
	"Kyungpook National University",
	"Ajou University",
	"Dankook University",
	"Hongik University",
	"Soongsil University",
}

var majors = []string{
	"Computer Science",
	"Software Engineering",
	"Computer Engineering",
	"Information Systems",
	"Electrical Engineering",
	"Electronics Engineering",
	"Industrial Engineering",
	"Mathematics",
	"Statistics",
	"Physics",
	"Business Administration",
	"Economics",
	"Design",
	"Mechanical Engineering",
	"Artificial Intelligence",
	"Data Science",
}

// masterTechSkills is the canonical skill vocabulary used for suggestions
// and validation.
var masterTechSkills = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"Go",
	"Kotlin",
	"Swift",
	"Dart",
	"C",
	"C++",
	"C#",
	"Rust",
	"PHP",
	"Ruby",
	"SQL",
	"HTML",
	"CSS",
	"React",
	"Vue.js",
	"Angular",
	"Next.js",
	"Node.js",
	"Express",
	"Spring Boot",
	"Django",
	"Flask",
	"FastAPI",
	"React Native",
	"Flutter",
	"PostgreSQL",
	"MySQL",
	"MongoDB",
	"Redis",
	"Elasticsearch",
	"Kafka",
	"GraphQL",
	"REST API",
	"Docker",
	"Kubernetes",
	"AWS",
	"GCP",
	"Azure",
	"Terraform",
	"Git",
	"Linux",
	"CI/CD",
	"TensorFlow",
	"PyTorch",
	"Pandas",
	"Figma",
}

// popularSkillsSeed is the curated default returned for suggestion requests
// without a query.
var popularSkillsSeed = []string{
	"JavaScript",
	"Python",
	"Java",
	"React",
	"Node.js",
	"SQL",
	"TypeScript",
	"Docker",
	"AWS",
	"Git",
}

func techRoleCategories() []string {
	seen := make(map[string]struct{}, len(techRoles))
	var categories []string
	for _, role := range techRoles {
		if _, ok := seen[role.Category]; ok {
			continue
		}
		seen[role.Category] = struct{}{}
		categories = append(categories, role.Category)
	}
	return categories
}

func techRoleNames() []string {
	names := make([]string, len(techRoles))
	for i, role := range techRoles {
		names[i] = role.Name
	}
	return names
}
