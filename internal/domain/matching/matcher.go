package matching

import (
	"math"
	"strings"
)

// taxonomy holds the target skill set per career bucket.
var taxonomy = map[string][]string{
	"backend":   {"Python", "Java", "C#", "Go", "Rust"},
	"frontend":  {"JavaScript", "React", "Vue", "Angular", "TypeScript"},
	"fullstack": {"JavaScript", "Python", "React", "Node.js", "PostgreSQL"},
	"data":      {"Python", "SQL", "Pandas", "Statistics", "Machine Learning"},
	"ml":        {"Python", "TensorFlow", "PyTorch", "Machine Learning", "Mathematics"},
	"devops":    {"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"},
	"mobile":    {"React Native", "Swift", "Kotlin", "Flutter"},
}

const (
	ReadinessReady        = "ready"
	ReadinessIntermediate = "intermediate"
	ReadinessBeginner     = "beginner"
	ReadinessNovice       = "novice"
)

type MatchReport struct {
	CareerGoal     string
	TargetSkills   []string
	MatchedSkills  []string
	MissingSkills  []string
	MatchScore     float64
	ReadinessLevel string
}

// Match scores how well the given skills cover the goal's taxonomy bucket.
// Matched and missing skills are reported lower-cased, in target-set order.
func Match(skills []string, goal string) MatchReport {
	target := taxonomy[normalizeGoal(goal)]

	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[strings.ToLower(s)] = struct{}{}
	}

	matched := make([]string, 0, len(target))
	missing := make([]string, 0, len(target))
	targetSet := make(map[string]struct{}, len(target))
	for _, t := range target {
		lower := strings.ToLower(t)
		if _, dup := targetSet[lower]; dup {
			continue
		}
		targetSet[lower] = struct{}{}
		if _, ok := skillSet[lower]; ok {
			matched = append(matched, lower)
		} else {
			missing = append(missing, lower)
		}
	}

	score := 0.0
	if len(targetSet) > 0 {
		score = float64(len(matched)) / float64(len(targetSet)) * 100
		score = math.Round(score*100) / 100
	}

	return MatchReport{
		CareerGoal:     goal,
		TargetSkills:   append([]string(nil), target...),
		MatchedSkills:  matched,
		MissingSkills:  missing,
		MatchScore:     score,
		ReadinessLevel: readiness(score),
	}
}

// normalizeGoal buckets free-text goals by ordered substring tests. The "ml"
// test matches any goal containing "ml", so it fires before the rest.
func normalizeGoal(goal string) string {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "machine learning") || strings.Contains(g, "ml"):
		return "ml"
	case strings.Contains(g, "backend"):
		return "backend"
	case strings.Contains(g, "frontend"):
		return "frontend"
	case strings.Contains(g, "full stack"):
		return "fullstack"
	case strings.Contains(g, "data"):
		return "data"
	case strings.Contains(g, "devops"):
		return "devops"
	case strings.Contains(g, "mobile"):
		return "mobile"
	default:
		return "fullstack"
	}
}

func readiness(score float64) string {
	switch {
	case score >= 80:
		return ReadinessReady
	case score >= 60:
		return ReadinessIntermediate
	case score >= 40:
		return ReadinessBeginner
	default:
		return ReadinessNovice
	}
}
