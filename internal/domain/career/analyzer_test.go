package career

import (
	"reflect"
	"testing"
)

func TestDetectGaps_DataScientist(t *testing.T) {
	report := DetectGaps("Data Scientist", []string{"python", "sql", "pandas"})

	wantGaps := []string{"Machine Learning", "Data Visualization"}
	if !reflect.DeepEqual(report.SkillGaps, wantGaps) {
		t.Fatalf("SkillGaps = %v, want %v", report.SkillGaps, wantGaps)
	}
	if report.ProficiencyGaps != 2 {
		t.Errorf("ProficiencyGaps = %d, want 2", report.ProficiencyGaps)
	}
	if report.CompletionPercentage != 60.0 {
		t.Errorf("CompletionPercentage = %v, want 60.0", report.CompletionPercentage)
	}
	if report.CareerGoal != "Data Scientist" {
		t.Errorf("CareerGoal = %q, want original casing preserved", report.CareerGoal)
	}
}

func TestDetectGaps_GoalSynonymsAgree(t *testing.T) {
	synonymGroups := [][]string{
		{"ml engineer", "machine learning engineer", "machine learning", "ml engineering"},
		{"data scientist", "data science"},
		{"backend engineer", "backend"},
		{"devops engineer", "devops"},
	}
	current := []string{"python", "docker"}

	for _, group := range synonymGroups {
		base := DetectGaps(group[0], current)
		for _, alias := range group[1:] {
			got := DetectGaps(alias, current)
			if !reflect.DeepEqual(got.SkillGaps, base.SkillGaps) {
				t.Errorf("gaps for %q = %v, want same as %q = %v", alias, got.SkillGaps, group[0], base.SkillGaps)
			}
		}
	}
}

func TestDetectGaps_UnknownGoalFallsBack(t *testing.T) {
	report := DetectGaps("Astronaut", nil)

	wantGaps := []string{"Python", "JavaScript", "SQL"}
	if !reflect.DeepEqual(report.SkillGaps, wantGaps) {
		t.Fatalf("SkillGaps = %v, want fallback %v", report.SkillGaps, wantGaps)
	}
	if report.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %v, want 0", report.CompletionPercentage)
	}
}

func TestDetectGaps_CompletionCanExceedHundred(t *testing.T) {
	// Distinct-count ratio, not a true overlap: more distinct normalized
	// skills than required skills pushes completion past 100.
	current := []string{"python", "javascript", "sql", "docker", "rust", "go", "haskell"}
	report := DetectGaps("Astronaut", current)

	if report.CompletionPercentage <= 100 {
		t.Errorf("CompletionPercentage = %v, want > 100", report.CompletionPercentage)
	}
	if len(report.SkillGaps) != 0 {
		t.Errorf("SkillGaps = %v, want none", report.SkillGaps)
	}
}

func TestDetectGaps_CaseInsensitiveLookupNoTrim(t *testing.T) {
	upper := DetectGaps("DATA SCIENTIST", []string{"python"})
	lower := DetectGaps("data scientist", []string{"python"})
	if !reflect.DeepEqual(upper.SkillGaps, lower.SkillGaps) {
		t.Errorf("goal lookup should be case-insensitive: %v vs %v", upper.SkillGaps, lower.SkillGaps)
	}

	// Leading whitespace defeats the table lookup and hits the fallback.
	padded := DetectGaps(" data scientist", nil)
	want := []string{"Python", "JavaScript", "SQL"}
	if !reflect.DeepEqual(padded.SkillGaps, want) {
		t.Errorf("padded goal gaps = %v, want fallback %v", padded.SkillGaps, want)
	}
}

func TestDetectGaps_DuplicateCurrentSkillsCollapse(t *testing.T) {
	report := DetectGaps("Data Scientist", []string{"postgres", "mysql", "MariaDB"})
	// All three normalize to SQL; the normalized-current set has size 1.
	if report.CompletionPercentage != 20.0 {
		t.Errorf("CompletionPercentage = %v, want 20.0", report.CompletionPercentage)
	}
}

func TestMapTrajectory_Known(t *testing.T) {
	tr := MapTrajectory("DevOps Engineer")
	want := []string{"Linux Basics", "Docker/Containers", "Kubernetes", "CI/CD Pipelines", "Infrastructure as Code"}
	if !reflect.DeepEqual(tr.TrajectorySteps, want) {
		t.Fatalf("TrajectorySteps = %v, want %v", tr.TrajectorySteps, want)
	}
	if tr.TotalSteps != 5 {
		t.Errorf("TotalSteps = %d, want 5", tr.TotalSteps)
	}
}

func TestMapTrajectory_UnknownFallsBack(t *testing.T) {
	tr := MapTrajectory("Astronaut")
	want := []string{"Foundation", "Intermediate", "Advanced", "Expert"}
	if !reflect.DeepEqual(tr.TrajectorySteps, want) {
		t.Fatalf("TrajectorySteps = %v, want %v", tr.TrajectorySteps, want)
	}
	if tr.TotalSteps != 4 {
		t.Errorf("TotalSteps = %d, want 4", tr.TotalSteps)
	}
	if tr.CareerGoal != "Astronaut" {
		t.Errorf("CareerGoal = %q, want input preserved", tr.CareerGoal)
	}
}
