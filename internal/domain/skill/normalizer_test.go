package skill

import "testing"

func TestNormalize_KnownAliases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"postgres", "SQL"},
		{"PostgreSQL", "SQL"},
		{"MariaDB", "SQL"},
		{"tensorflow", "Deep Learning"},
		{"PyTorch", "Deep Learning"},
		{"react", "Frontend Framework"},
		{"AWS", "Cloud Platform"},
		{"k8s", "Container"},
		{"mongodb", "NoSQL"},
		{"sklearn", "Machine Learning"},
		{"pandas", "Data Processing"},
		{"Node.js", "API Framework"},
		{"SQL Server", "SQL"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_UnknownPassesThroughVerbatim(t *testing.T) {
	cases := []string{"COBOL", "Rust", "Problem Solving", "  python  ", ""}
	for _, in := range cases {
		if got := Normalize(in); got != in {
			t.Errorf("Normalize(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestNormalize_IdempotentOnAliasOutputs(t *testing.T) {
	// Canonical forms are not themselves alias keys, so a second pass must
	// be a no-op for every entry in the table.
	for variant := range aliases {
		once := Normalize(variant)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", variant, once, twice)
		}
	}
}
