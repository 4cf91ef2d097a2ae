package roadmap

import (
	"reflect"
	"testing"
)

// DevOps Engineer with no current skills leaves all five required skills as
// gaps: Container, Cloud Platform, Linux, CI/CD, Infrastructure as Code.
func TestGenerate_FiveGapsProducesThreePhases(t *testing.T) {
	rm := Generate("DevOps Engineer", nil, 0)

	if len(rm.Phases) != 3 {
		t.Fatalf("phases = %d, want 3", len(rm.Phases))
	}

	p1, p2, p3 := rm.Phases[0], rm.Phases[1], rm.Phases[2]

	if want := []string{"Container", "Cloud Platform"}; !reflect.DeepEqual(p1.Skills, want) {
		t.Errorf("phase 1 skills = %v, want %v", p1.Skills, want)
	}
	if want := []string{"Linux", "CI/CD"}; !reflect.DeepEqual(p2.Skills, want) {
		t.Errorf("phase 2 skills = %v, want %v", p2.Skills, want)
	}
	if want := []string{"Infrastructure as Code"}; !reflect.DeepEqual(p3.Skills, want) {
		t.Errorf("phase 3 skills = %v, want %v", p3.Skills, want)
	}

	for i, want := range []struct {
		name     string
		duration string
	}{
		{"Foundation", "4-6 weeks"},
		{"Intermediate", "8-12 weeks"},
		{"Advanced", "12-16 weeks"},
	} {
		p := rm.Phases[i]
		if p.PhaseName != want.name || p.Duration != want.duration {
			t.Errorf("phase %d = %s/%s, want %s/%s", i+1, p.PhaseName, p.Duration, want.name, want.duration)
		}
		if p.PhaseNumber != i+1 || p.Order != i+1 {
			t.Errorf("phase %d numbering = %d/%d", i+1, p.PhaseNumber, p.Order)
		}
	}

	// months = 5*2 = 10, rendered with the weeks label.
	if rm.TotalDuration != "10-14 weeks" {
		t.Errorf("TotalDuration = %q, want %q", rm.TotalDuration, "10-14 weeks")
	}
}

func TestGenerate_NoGapsProducesSingleFundamentalsPhase(t *testing.T) {
	// Astronaut falls back to Python/JavaScript/SQL, all covered.
	rm := Generate("Astronaut", []string{"python", "javascript", "sql"}, 3)

	if len(rm.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(rm.Phases))
	}
	p := rm.Phases[0]
	if want := []string{"Fundamentals"}; !reflect.DeepEqual(p.Skills, want) {
		t.Errorf("skills = %v, want %v", p.Skills, want)
	}
	// Project lookup is seeded from Python when there are no gaps.
	if want := []string{"Build a CLI Tool", "Web Scraper"}; !reflect.DeepEqual(p.Projects, want) {
		t.Errorf("projects = %v, want %v", p.Projects, want)
	}
	if rm.TotalDuration != "0-4 weeks" {
		t.Errorf("TotalDuration = %q, want %q", rm.TotalDuration, "0-4 weeks")
	}
}

func TestGenerate_ThreeGapsSecondPhaseTakesRemainder(t *testing.T) {
	// Astronaut fallback requirements with no current skills: 3 gaps.
	rm := Generate("Astronaut", nil, 0)

	if len(rm.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rm.Phases))
	}
	if want := []string{"Python", "JavaScript"}; !reflect.DeepEqual(rm.Phases[0].Skills, want) {
		t.Errorf("phase 1 skills = %v, want %v", rm.Phases[0].Skills, want)
	}
	if want := []string{"SQL"}; !reflect.DeepEqual(rm.Phases[1].Skills, want) {
		t.Errorf("phase 2 skills = %v, want %v", rm.Phases[1].Skills, want)
	}
}

func TestGenerate_StaticCounters(t *testing.T) {
	rm := Generate("Data Scientist", nil, 1)
	if rm.MilestoneCount != 4 {
		t.Errorf("MilestoneCount = %d, want static 4", rm.MilestoneCount)
	}
	if rm.ProjectsCount != 8 {
		t.Errorf("ProjectsCount = %d, want static 8", rm.ProjectsCount)
	}
}

func TestProjectsForSkills(t *testing.T) {
	t.Run("two ideas per skill capped at three", func(t *testing.T) {
		got := projectsForSkills([]string{"Python", "SQL"})
		want := []string{"Build a CLI Tool", "Web Scraper", "Complex Queries"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("projects = %v, want %v", got, want)
		}
	})

	t.Run("case-insensitive key match", func(t *testing.T) {
		got := projectsForSkills([]string{"ci/cd"})
		want := []string{"Automated Testing", "Deployment Pipeline"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("projects = %v, want %v", got, want)
		}
	})

	t.Run("no match falls back to single message", func(t *testing.T) {
		got := projectsForSkills([]string{"Underwater Basket Weaving"})
		if len(got) != 1 || got[0] != fallbackProject {
			t.Errorf("projects = %v, want single fallback message", got)
		}
	})
}
