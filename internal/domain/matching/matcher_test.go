package matching

import (
	"reflect"
	"strings"
	"testing"
)

func TestMatch_DataEngineerBucketsIntoData(t *testing.T) {
	report := Match([]string{"python", "sql"}, "Data Engineer")

	want := []string{"Python", "SQL", "Pandas", "Statistics", "Machine Learning"}
	if !reflect.DeepEqual(report.TargetSkills, want) {
		t.Fatalf("TargetSkills = %v, want data bucket %v", report.TargetSkills, want)
	}
	if report.MatchScore != 40.0 {
		t.Errorf("MatchScore = %v, want 40.0", report.MatchScore)
	}
	if report.ReadinessLevel != ReadinessBeginner {
		t.Errorf("ReadinessLevel = %q, want %q", report.ReadinessLevel, ReadinessBeginner)
	}
	if wantMatched := []string{"python", "sql"}; !reflect.DeepEqual(report.MatchedSkills, wantMatched) {
		t.Errorf("MatchedSkills = %v, want %v", report.MatchedSkills, wantMatched)
	}
	if wantMissing := []string{"pandas", "statistics", "machine learning"}; !reflect.DeepEqual(report.MissingSkills, wantMissing) {
		t.Errorf("MissingSkills = %v, want %v", report.MissingSkills, wantMissing)
	}
}

func TestNormalizeGoal_PriorityOrder(t *testing.T) {
	cases := []struct {
		goal string
		want string
	}{
		{"Machine Learning Engineer", "ml"},
		{"ML Ops Specialist", "ml"},
		{"Backend Developer", "backend"},
		{"Frontend Engineer", "frontend"},
		{"Full Stack Developer", "fullstack"},
		{"Data Engineer", "data"},
		{"DevOps Engineer", "devops"},
		{"Mobile Developer", "mobile"},
		{"Astronaut", "fullstack"},
		// "html" contains "ml", so the ml test fires first.
		{"HTML Specialist", "ml"},
	}
	for _, tc := range cases {
		if got := normalizeGoal(tc.goal); got != tc.want {
			t.Errorf("normalizeGoal(%q) = %q, want %q", tc.goal, got, tc.want)
		}
	}
}

func TestMatch_ReadinessTiers(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, ReadinessReady},
		{80, ReadinessReady},
		{79.99, ReadinessIntermediate},
		{60, ReadinessIntermediate},
		{40, ReadinessBeginner},
		{39.99, ReadinessNovice},
		{0, ReadinessNovice},
	}
	for _, tc := range cases {
		if got := readiness(tc.score); got != tc.want {
			t.Errorf("readiness(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestMatch_FullCoverageIsReady(t *testing.T) {
	report := Match([]string{"Docker", "KUBERNETES", "aws", "ci/cd", "Linux"}, "DevOps Engineer")
	if report.MatchScore != 100.0 {
		t.Errorf("MatchScore = %v, want 100.0", report.MatchScore)
	}
	if report.ReadinessLevel != ReadinessReady {
		t.Errorf("ReadinessLevel = %q, want %q", report.ReadinessLevel, ReadinessReady)
	}
	if len(report.MissingSkills) != 0 {
		t.Errorf("MissingSkills = %v, want none", report.MissingSkills)
	}
}

func TestRecommendProjects_OverlapFilterKeepsCatalogOrder(t *testing.T) {
	got := RecommendProjects([]string{"python"}, "ignored goal")

	wantTitles := []string{"REST API with FastAPI", "Machine Learning Model"}
	if len(got) != len(wantTitles) {
		t.Fatalf("got %d projects, want %d", len(got), len(wantTitles))
	}
	for i, p := range got {
		if p.Title != wantTitles[i] {
			t.Errorf("project[%d] = %q, want %q", i, p.Title, wantTitles[i])
		}
	}
}

func TestRecommendProjects_NoOverlap(t *testing.T) {
	if got := RecommendProjects([]string{"COBOL"}, "Backend Engineer"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestRecommendResources_Curated(t *testing.T) {
	got := RecommendResources("Python")
	if len(got) != 5 {
		t.Fatalf("got %d resources, want 5", len(got))
	}
	if got[0].Title != "Python for Everybody" {
		t.Errorf("first resource = %q", got[0].Title)
	}
}

func TestRecommendResources_UnknownSkillFallback(t *testing.T) {
	got := RecommendResources("COBOL")
	if len(got) != 5 {
		t.Fatalf("got %d resources, want 5 fallback entries", len(got))
	}
	for i, r := range got {
		if !strings.Contains(r.Title, "COBOL") && !strings.Contains(r.Link, "COBOL") {
			t.Errorf("fallback entry %d does not reference the skill: %+v", i, r)
		}
	}
	if got[0].Link != "https://www.google.com/search?q=learn+COBOL" {
		t.Errorf("search link = %q", got[0].Link)
	}
}

func TestRecommendResources_MultiWordFallbackLink(t *testing.T) {
	got := RecommendResources("Distributed Systems")
	if got[0].Link != "https://www.google.com/search?q=learn+Distributed+Systems" {
		t.Errorf("search link = %q", got[0].Link)
	}
}
