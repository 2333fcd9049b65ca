package registry_test

import (
	"testing"

	"github.com/joblens/joblens/internal/providers/registry"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name title-cased", "DATADOG", "Datadog"},
		{"noise term stripped", "Capgemini France", "Capgemini"},
		{"several noise terms", "Sopra Steria Recrutement France", "Sopra Steria"},
		{"truncated at dash", "Veolia - Eau France", "Veolia"},
		{"truncated at pipe", "Decathlon | Digital", "Decathlon"},
		{"truncated at parenthesis", "Airbus (Toulouse)", "Airbus"},
		{"siege marker stripped", "Carrefour (Siège)", "Carrefour"},
		{"ey gets a trailing space", "EY", "EY "},
		{"too short falls back to original", "SG", "SG"},
		{"noise-only falls back to original", "France", "France"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := registry.CleanName(tt.in); got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPickBest(t *testing.T) {
	known := registry.Candidate{Name: "A", EmployeeBracket: "21"}
	bigger := registry.Candidate{Name: "B", EmployeeBracket: "32"}
	unknown := registry.Candidate{Name: "C", EmployeeBracket: registry.UnknownBracket}
	blank := registry.Candidate{Name: "D"}

	tests := []struct {
		name       string
		candidates []registry.Candidate
		want       string
	}{
		{"empty slate", nil, ""},
		{"single candidate", []registry.Candidate{unknown}, "C"},
		{"known bracket beats unknown", []registry.Candidate{unknown, known}, "A"},
		{"order does not matter", []registry.Candidate{known, unknown}, "A"},
		{"higher bracket wins", []registry.Candidate{known, bigger}, "B"},
		{"blank bracket beats unknown", []registry.Candidate{unknown, blank}, "D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.PickBest(tt.candidates)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("PickBest = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("PickBest = %+v, want %s", got, tt.want)
			}
		})
	}
}
