package scraper

import (
	"context"
	"testing"
)

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"64,321", 64321},
		{" 1,204 stars today ", 1204},
		{"987", 987},
		{"", 0},
		{"no digits", 0},
	}
	for _, tc := range cases {
		if got := parseCount(tc.in); got != tc.want {
			t.Errorf("parseCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPickNonEmpty(t *testing.T) {
	if got := pickNonEmpty("", "  ", "Go", "Rust"); got != "Go" {
		t.Fatalf("got %q", got)
	}
	if got := pickNonEmpty("", "  "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFallbackTrending(t *testing.T) {
	repos := fallbackTrending("go")
	if len(repos) == 0 {
		t.Fatalf("expected fallback repos")
	}
	for _, r := range repos {
		if r.Name == "" || r.URL == "" {
			t.Fatalf("incomplete fallback repo: %+v", r)
		}
		if r.Language != "go" {
			t.Fatalf("expected requested language, got %q", r.Language)
		}
	}
}

func TestLinkedInScrapeProfile_RejectsBadURLs(t *testing.T) {
	s := NewLinkedInScraper(nil)

	if _, err := s.ScrapeProfile(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := s.ScrapeProfile(context.Background(), "https://example.com/profile"); err == nil {
		t.Fatalf("expected error for non-linkedin url")
	}
}

func TestMockProfileShape(t *testing.T) {
	p := mockProfile()
	if !p.Mocked {
		t.Fatalf("mock profile must be flagged")
	}
	if len(p.Experience) == 0 || len(p.Skills) == 0 {
		t.Fatalf("mock profile should carry experience and skills")
	}
}
