package portfolio

import (
	"strings"
	"testing"
)

func testData() PageData {
	return PageData{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Bio:   "Backend engineer",
		Skills: []string{
			"Python", "SQL",
		},
		Projects: []ProjectEntry{
			{Title: "REST API with FastAPI", Description: "API project", Skills: []string{"Python"}},
		},
		Experience: []ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Duration: "2020 - 2024", Description: "Built services"},
		},
		GitHubURL:   "https://github.com/ada",
		LinkedInURL: "https://linkedin.com/in/ada",
	}
}

func TestRender_AllThemes(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	for _, theme := range g.Themes() {
		theme := theme
		t.Run(theme, func(t *testing.T) {
			got, html, err := g.Render(theme, testData())
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != theme {
				t.Fatalf("theme changed: want %q got %q", theme, got)
			}
			for _, want := range []string{"Ada Lovelace", "ada@example.com", "Python", "REST API with FastAPI"} {
				if !strings.Contains(html, want) {
					t.Fatalf("%s output missing %q", theme, want)
				}
			}
		})
	}
}

func TestRender_UnknownThemeFallsBack(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	theme, html, err := g.Render("brutalist", testData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if theme != DefaultTheme {
		t.Fatalf("expected fallback to %q, got %q", DefaultTheme, theme)
	}
	if !strings.Contains(html, "Ada Lovelace") {
		t.Fatalf("fallback output missing name")
	}
}

func TestRender_EmptyDataGetsPlaceholders(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	_, html, err := g.Render("minimal", PageData{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Your Name", "your@email.com"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing placeholder %q", want)
		}
	}
}

func TestRender_EscapesUserContent(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	data := testData()
	data.Bio = `<script>alert("x")</script>`

	_, html, err := g.Render("faang", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Fatalf("bio was not escaped")
	}
}
