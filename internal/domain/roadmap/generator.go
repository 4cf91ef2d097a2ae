package roadmap

import (
	"fmt"
	"strings"

	"career-compass/internal/domain/career"
)

// skillProjects maps canonical skills to hands-on project ideas used when
// filling out roadmap phases.
var skillProjects = map[string][]string{
	"Python":                 {"Build a CLI Tool", "Web Scraper", "Data Analysis Script"},
	"JavaScript":             {"Interactive Web App", "DOM Manipulation Project", "Browser Games"},
	"Frontend Framework":     {"Todo App", "Weather Dashboard", "Social Media Feed UI"},
	"API Framework":          {"REST API Backend", "User Authentication System", "Microservice"},
	"SQL":                    {"Complex Queries", "Database Design", "Data Reporting"},
	"Deep Learning":          {"Image Classification Model", "Neural Network", "Time Series Prediction"},
	"Container":              {"Containerize Application", "Multi-container Setup", "Docker Compose"},
	"Cloud Platform":         {"Deploy on Cloud", "Serverless Functions", "Data Pipeline"},
	"NoSQL":                  {"NoSQL Database Design", "Document Queries", "Data Migration"},
	"Statistics":             {"Statistical Analysis", "Hypothesis Testing", "Data Visualization"},
	"Machine Learning":       {"Predictive Model", "Feature Engineering", "Model Comparison"},
	"Data Processing":        {"Data Cleaning", "Feature Engineering", "Data Pipeline"},
	"Data Visualization":     {"Dashboard Creation", "Interactive Charts", "Data Storytelling"},
	"CI/CD":                  {"Automated Testing", "Deployment Pipeline", "Monitoring Setup"},
	"Infrastructure as Code": {"IaC Configuration", "Terraform Scripts", "Helm Charts"},
	"TypeScript":             {"Type-Safe App", "Type Definitions", "Typed Library"},
	"HTML":                   {"Semantic Markup", "Accessible Pages", "Web Components"},
	"CSS":                    {"Responsive Design", "CSS Grid Layout", "Animation Effects"},
	"Linux":                  {"Shell Scripting", "System Administration", "Process Management"},
}

const fallbackProject = "Build a practical project with your new skills"

type Phase struct {
	PhaseNumber int      `json:"phase_number"`
	PhaseName   string   `json:"phase_name"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Projects    []string `json:"projects"`
	Resources   []string `json:"resources"`
	Milestones  []string `json:"milestones"`
	Order       int      `json:"order"`
}

type Roadmap struct {
	Goal          string  `json:"goal"`
	Phases        []Phase `json:"phases"`
	TotalDuration string  `json:"total_duration"`

	// Static counters kept for response compatibility; they are not derived
	// from the generated phases.
	MilestoneCount int `json:"milestone_count"`
	ProjectsCount  int `json:"projects_count"`
}

// Generate builds a phased learning roadmap from the gap list for the goal.
// yearsExperience is accepted for interface compatibility but does not
// influence the phases.
func Generate(goal string, currentSkills []string, yearsExperience int) Roadmap {
	_ = yearsExperience

	report := career.DetectGaps(goal, currentSkills)
	gaps := report.SkillGaps

	return Roadmap{
		Goal:           goal,
		Phases:         buildPhases(gaps),
		TotalDuration:  estimateDuration(len(gaps)),
		MilestoneCount: 4,
		ProjectsCount:  8,
	}
}

// buildPhases slices the ordered gap list into up to three fixed phases.
// Later phases are omitted entirely, never emitted empty.
func buildPhases(gaps []string) []Phase {
	phases := make([]Phase, 0, 3)

	foundationSkills := firstN(gaps, 2)
	projectSeed := foundationSkills
	if len(gaps) == 0 {
		foundationSkills = []string{"Fundamentals"}
		projectSeed = []string{"Python"}
	}

	phases = append(phases, Phase{
		PhaseNumber: 1,
		PhaseName:   "Foundation",
		Duration:    "4-6 weeks",
		Skills:      foundationSkills,
		Projects:    projectsForSkills(projectSeed),
		Resources:   []string{"YouTube Tutorial", "Official Documentation"},
		Milestones:  []string{"Complete basic tutorials", "First mini-project"},
		Order:       1,
	})

	if len(gaps) > 2 {
		intermediate := gaps[2:]
		if len(gaps) > 4 {
			intermediate = gaps[2:4]
		}
		phases = append(phases, Phase{
			PhaseNumber: 2,
			PhaseName:   "Intermediate",
			Duration:    "8-12 weeks",
			Skills:      intermediate,
			Projects:    projectsForSkills(intermediate),
			Resources:   []string{"Udemy Course", "Blog Posts"},
			Milestones:  []string{"Build intermediate project", "Contribute to open source"},
			Order:       2,
		})
	}

	if len(gaps) > 4 {
		advanced := gaps[4:]
		phases = append(phases, Phase{
			PhaseNumber: 3,
			PhaseName:   "Advanced",
			Duration:    "12-16 weeks",
			Skills:      advanced,
			Projects:    projectsForSkills(advanced),
			Resources:   []string{"Research Papers", "Advanced Courses"},
			Milestones:  []string{"Advanced project completion", "System design"},
			Order:       3,
		})
	}

	return phases
}

// projectsForSkills collects up to 3 unique project ideas for the phase,
// taking the first 2 ideas per matched skill. Output keeps first-seen order.
func projectsForSkills(skills []string) []string {
	seen := make(map[string]struct{})
	projects := make([]string, 0, 3)

	for _, s := range skills {
		ideas, ok := lookupProjects(s)
		if !ok {
			continue
		}
		for _, idea := range firstN(ideas, 2) {
			if _, dup := seen[idea]; dup {
				continue
			}
			seen[idea] = struct{}{}
			projects = append(projects, idea)
		}
	}

	if len(projects) == 0 {
		return []string{fallbackProject}
	}
	if len(projects) > 3 {
		projects = projects[:3]
	}
	return projects
}

func lookupProjects(s string) ([]string, bool) {
	for key, ideas := range skillProjects {
		if strings.EqualFold(key, s) {
			return ideas, true
		}
	}
	return nil, false
}

// estimateDuration keeps the original estimate formula verbatim, including
// its months-computed, weeks-labeled rendering.
func estimateDuration(gapCount int) string {
	months := gapCount * 2
	return fmt.Sprintf("%d-%d weeks", months, months+4)
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
