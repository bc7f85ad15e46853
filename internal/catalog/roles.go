package catalog

import "strings"

// RoleProfile is a named target role with its required skills. The skill
// list is canonical and ordered for display; semantically it is a set,
// though duplicates in the list would count multiple times when scoring.
type RoleProfile struct {
	Name     string
	Required []string
}

// FindRole looks a role up by name, case-insensitively.
func FindRole(roles []RoleProfile, name string) *RoleProfile {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range roles {
		if strings.ToLower(roles[i].Name) == name {
			return &roles[i]
		}
	}
	return nil
}

// RoleNames returns the role names in table order.
func RoleNames(roles []RoleProfile) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names
}

// DefaultDirections is the built-in career direction table scored by the
// direction recommender. Table order matters: ranking is stable, so ties
// keep this order.
func DefaultDirections() []RoleProfile {
	return []RoleProfile{
		{Name: "Data Analyst", Required: []string{"python", "sql", "data analysis"}},
		{Name: "Data Scientist", Required: []string{"python", "machine learning", "data science"}},
		{Name: "Business Intelligence Analyst", Required: []string{"sql", "business intelligence", "data analysis"}},
		{Name: "Backend Developer", Required: []string{"python", "java", "sql", "node"}},
		{Name: "Frontend Developer", Required: []string{"javascript", "html", "css", "react"}},
	}
}

// DefaultRoles is the built-in role requirement table consumed by the
// learning plan builder. Requirements are canonical skill labels; the
// missing-skill computation subtracts the user's set from them exactly.
func DefaultRoles() []RoleProfile {
	return []RoleProfile{
		{Name: "Python Developer", Required: []string{"python", "django", "fastapi", "postgresql", "docker", "git", "rest api", "linux"}},
		{Name: "Backend Developer", Required: []string{"python", "fastapi", "django", "postgresql", "redis", "docker", "rest api", "sql"}},
		{Name: "Frontend Developer", Required: []string{"javascript", "typescript", "react", "node", "css", "html", "webpack", "ci/cd"}},
		{Name: "QA Engineer", Required: []string{"python", "postman", "postgresql", "functional testing", "regression testing", "manual testing", "automation testing", "bug tracking systems"}},
		{Name: "Data Scientist", Required: []string{"python", "pandas", "numpy", "scikit-learn", "pytorch", "machine learning", "deep learning", "data analysis", "statistics"}},
		{Name: "DevOps Engineer", Required: []string{"linux", "docker", "kubernetes", "ci/cd", "monitoring tools", "container orchestration", "infrastructure automation"}},
		{Name: "System Administrator", Required: []string{"linux", "shell scripting", "networking", "virtualization", "security practices", "database administration"}},
		{Name: "Mobile Developer", Required: []string{"swift", "kotlin", "java", "ios sdk", "android sdk", "firebase", "flutter"}},
		{Name: "ML Engineer", Required: []string{"python", "pytorch", "tensorflow", "machine learning", "deep learning", "data processing", "model deployment"}},
		{Name: "Business Analyst", Required: []string{"sql", "excel", "data analysis", "requirements gathering", "stakeholder management", "product documentation"}},
	}
}
