package career

import (
	"strings"

	"career-compass/internal/domain/skill"
)

// goalRequirements maps lower-cased goal aliases to the canonical skills a
// goal demands. Synonym aliases share the same sequence on purpose.
var goalRequirements = map[string][]string{
	"machine learning engineer": {"Python", "Deep Learning", "Statistics", "SQL", "Data Processing"},
	"machine learning":          {"Python", "Deep Learning", "Statistics", "SQL", "Data Processing"},
	"ml engineer":               {"Python", "Deep Learning", "Statistics", "SQL", "Data Processing"},
	"ml engineering":            {"Python", "Deep Learning", "Statistics", "SQL", "Data Processing"},
	"data scientist":            {"Python", "SQL", "Data Processing", "Machine Learning", "Data Visualization"},
	"data science":              {"Python", "SQL", "Data Processing", "Machine Learning", "Data Visualization"},
	"full stack developer":      {"JavaScript", "Frontend Framework", "API Framework", "SQL", "Container"},
	"fullstack":                 {"JavaScript", "Frontend Framework", "API Framework", "SQL", "Container"},
	"backend engineer":          {"Python", "API Framework", "SQL", "NoSQL", "Cloud Platform"},
	"backend":                   {"Python", "API Framework", "SQL", "NoSQL", "Cloud Platform"},
	"devops engineer":           {"Container", "Cloud Platform", "Linux", "CI/CD", "Infrastructure as Code"},
	"devops":                    {"Container", "Cloud Platform", "Linux", "CI/CD", "Infrastructure as Code"},
	"frontend engineer":         {"JavaScript", "Frontend Framework", "CSS", "HTML", "TypeScript"},
	"frontend":                  {"JavaScript", "Frontend Framework", "CSS", "HTML", "TypeScript"},
	"cloud architect":           {"Cloud Platform", "Container", "Infrastructure as Code", "Database Design", "Security"},
	"cloud":                     {"Cloud Platform", "Container", "Infrastructure as Code", "Database Design", "Security"},
}

var trajectories = map[string][]string{
	"machine learning engineer": {"Python Basics", "ML Fundamentals", "Deep Learning", "Advanced NLP", "ML Systems Design"},
	"machine learning":          {"Python Basics", "ML Fundamentals", "Deep Learning", "Advanced NLP", "ML Systems Design"},
	"ml engineer":               {"Python Basics", "ML Fundamentals", "Deep Learning", "Advanced NLP", "ML Systems Design"},
	"ml engineering":            {"Python Basics", "ML Fundamentals", "Deep Learning", "Advanced NLP", "ML Systems Design"},
	"full stack developer":      {"Frontend Basics", "Backend Fundamentals", "Database Design", "DevOps", "System Design"},
	"fullstack":                 {"Frontend Basics", "Backend Fundamentals", "Database Design", "DevOps", "System Design"},
	"data scientist":            {"Python & SQL", "Statistics", "Data Visualization", "Machine Learning", "Big Data Tools"},
	"data science":              {"Python & SQL", "Statistics", "Data Visualization", "Machine Learning", "Big Data Tools"},
	"backend engineer":          {"Python Web Dev", "Database Design", "Microservices", "System Design", "Cloud Deployment"},
	"backend":                   {"Python Web Dev", "Database Design", "Microservices", "System Design", "Cloud Deployment"},
	"frontend engineer":         {"HTML/CSS Basics", "JavaScript Fundamentals", "React/Framework", "State Management", "Advanced UI/UX"},
	"frontend":                  {"HTML/CSS Basics", "JavaScript Fundamentals", "React/Framework", "State Management", "Advanced UI/UX"},
	"devops engineer":           {"Linux Basics", "Docker/Containers", "Kubernetes", "CI/CD Pipelines", "Infrastructure as Code"},
	"devops":                    {"Linux Basics", "Docker/Containers", "Kubernetes", "CI/CD Pipelines", "Infrastructure as Code"},
	"cloud architect":           {"Cloud Fundamentals", "AWS/Azure Services", "Architecture Patterns", "Security", "Cost Optimization"},
	"cloud":                     {"Cloud Fundamentals", "AWS/Azure Services", "Architecture Patterns", "Security", "Cost Optimization"},
}

// defaultRequirements is the baseline skill set returned for goals the table
// does not know. Unknown goals degrade to generic guidance instead of failing.
var defaultRequirements = []string{"Python", "JavaScript", "SQL"}

var defaultTrajectory = []string{"Foundation", "Intermediate", "Advanced", "Expert"}

type GapReport struct {
	CareerGoal           string
	CurrentSkills        []string
	SkillGaps            []string
	ProficiencyGaps      int
	CompletionPercentage float64
}

type Trajectory struct {
	CareerGoal      string
	TrajectorySteps []string
	TotalSteps      int
}

// RequiredSkills returns the canonical skills for a goal, in table order.
func RequiredSkills(goal string) []string {
	if req, ok := goalRequirements[strings.ToLower(goal)]; ok {
		return append([]string(nil), req...)
	}
	return append([]string(nil), defaultRequirements...)
}

// DetectGaps compares a user's normalized current skills against the goal's
// required set. Required skills are already canonical and are matched
// lower-cased but reported in their original casing, in table order.
func DetectGaps(goal string, currentSkills []string) GapReport {
	required := RequiredSkills(goal)

	normalizedCurrent := make(map[string]struct{}, len(currentSkills))
	for _, s := range currentSkills {
		normalizedCurrent[strings.ToLower(skill.Normalize(s))] = struct{}{}
	}

	gaps := make([]string, 0, len(required))
	requiredSet := make(map[string]struct{}, len(required))
	for _, req := range required {
		lower := strings.ToLower(req)
		requiredSet[lower] = struct{}{}
		if _, ok := normalizedCurrent[lower]; !ok {
			gaps = append(gaps, req)
		}
	}

	// Distinct-count ratio rather than a true overlap: a user holding more
	// distinct skills than required can score above 100.
	completion := 0.0
	if len(requiredSet) > 0 {
		completion = float64(len(normalizedCurrent)) / float64(len(requiredSet)) * 100
	}

	return GapReport{
		CareerGoal:           goal,
		CurrentSkills:        currentSkills,
		SkillGaps:            gaps,
		ProficiencyGaps:      len(gaps),
		CompletionPercentage: completion,
	}
}

// MapTrajectory returns the milestone stages toward a goal, falling back to a
// generic four-stage ladder for unknown goals.
func MapTrajectory(goal string) Trajectory {
	steps, ok := trajectories[strings.ToLower(goal)]
	if !ok {
		steps = defaultTrajectory
	}
	out := append([]string(nil), steps...)
	return Trajectory{
		CareerGoal:      goal,
		TrajectorySteps: out,
		TotalSteps:      len(out),
	}
}
