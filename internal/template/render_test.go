package template

import (
	"strings"
	"testing"

	"github.com/elecmate/signup-recovery/internal/domain"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return r
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t)

	first, err := r.Render("Dave Smith", domain.RoleApprentice, 2026)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := r.Render("Dave Smith", domain.RoleApprentice, 2026)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first != second {
		t.Error("identical inputs produced different output")
	}
}

func TestRenderVariantsDiffer(t *testing.T) {
	r := newTestRenderer(t)

	elec, err := r.Render("Dave Smith", domain.RoleElectrician, 2026)
	if err != nil {
		t.Fatalf("Render(electrician) error: %v", err)
	}
	appr, err := r.Render("Dave Smith", domain.RoleApprentice, 2026)
	if err != nil {
		t.Fatalf("Render(apprentice) error: %v", err)
	}

	if elec == appr {
		t.Fatal("electrician and apprentice variants are identical")
	}
	if !strings.Contains(elec, "#f59e0b") {
		t.Error("electrician variant missing amber accent token")
	}
	if !strings.Contains(appr, "#3b82f6") {
		t.Error("apprentice variant missing blue accent token")
	}
	if !strings.Contains(elec, "Digital certificates") {
		t.Error("electrician variant missing its feature list")
	}
	if !strings.Contains(appr, "AM2 preparation") {
		t.Error("apprentice variant missing its feature list")
	}
}

func TestRenderRequiredContent(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render("Dave Smith", domain.RoleElectrician, 2026)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, want := range []string{
		"Hey Dave,",
		"&pound;9.99/month",
		"https://elec-mate.com/auth?intent=trial",
		"&copy; 2026 Elec-Mate",
		"free trial",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	// Only the first name token should appear in the greeting.
	if strings.Contains(out, "Hey Dave Smith,") {
		t.Error("greeting used the full name instead of the first token")
	}
}

func TestRenderNameFallback(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		name     string
		fullName string
	}{
		{"empty name", ""},
		{"whitespace only", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.fullName, domain.RoleElectrician, 2026)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if !strings.Contains(out, "Hey there,") {
				t.Error("missing fallback greeting")
			}
			if strings.Contains(out, "Hey ,") {
				t.Error("malformed greeting with empty name")
			}
		})
	}
}

func TestRenderUnknownRoleUsesElectrician(t *testing.T) {
	r := newTestRenderer(t)

	unknown, err := r.Render("Dave", domain.Role("employer"), 2026)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	elec, err := r.Render("Dave", domain.RoleElectrician, 2026)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if unknown != elec {
		t.Error("unrecognized role did not fall back to the electrician variant")
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dave Smith", "Dave"},
		{"Dave", "Dave"},
		{"  Dave   Smith  ", "Dave"},
		{"", FallbackName},
		{"   ", FallbackName},
	}
	for _, tt := range tests {
		if got := FirstName(tt.in); got != tt.want {
			t.Errorf("FirstName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
