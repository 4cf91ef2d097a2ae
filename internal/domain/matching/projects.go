package matching

import "strings"

type Project struct {
	Title      string
	Skills     []string
	Difficulty string
	Duration   string
}

// projectCatalog is the fixed recommendation pool, filtered by skill overlap.
var projectCatalog = []Project{
	{
		Title:      "Portfolio Website",
		Skills:     []string{"HTML", "CSS", "JavaScript"},
		Difficulty: "beginner",
		Duration:   "2 weeks",
	},
	{
		Title:      "REST API with FastAPI",
		Skills:     []string{"Python", "FastAPI", "PostgreSQL"},
		Difficulty: "intermediate",
		Duration:   "3 weeks",
	},
	{
		Title:      "Machine Learning Model",
		Skills:     []string{"Python", "TensorFlow", "Scikit-learn"},
		Difficulty: "intermediate",
		Duration:   "4 weeks",
	},
	{
		Title:      "Full-stack Application",
		Skills:     []string{"React", "Node.js", "MongoDB"},
		Difficulty: "advanced",
		Duration:   "6 weeks",
	},
	{
		Title:      "Docker Containerization",
		Skills:     []string{"Docker", "Kubernetes", "DevOps"},
		Difficulty: "intermediate",
		Duration:   "2 weeks",
	},
}

const maxRecommendedProjects = 5

// RecommendProjects filters the catalog for any case-insensitive skill
// overlap, keeping catalog declaration order. The goal argument is carried
// for API compatibility and does not affect filtering.
func RecommendProjects(skills []string, goal string) []Project {
	_ = goal

	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[strings.ToLower(s)] = struct{}{}
	}

	recommended := make([]Project, 0, maxRecommendedProjects)
	for _, p := range projectCatalog {
		if !overlaps(skillSet, p.Skills) {
			continue
		}
		recommended = append(recommended, p)
		if len(recommended) == maxRecommendedProjects {
			break
		}
	}
	return recommended
}

func overlaps(set map[string]struct{}, skills []string) bool {
	for _, s := range skills {
		if _, ok := set[strings.ToLower(s)]; ok {
			return true
		}
	}
	return false
}
