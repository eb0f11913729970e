// Package template renders the incomplete-signup recovery emails.
//
// Rendering is a pure function: (name, role, year) → HTML document. The two
// variants are hand-written inline-style documents (email clients do not load
// external stylesheets) with Liquid used only for variable substitution, so
// identical inputs always produce byte-identical output.
package template

import (
	"fmt"
	"strings"
	"sync"

	"github.com/osteele/liquid"

	"github.com/elecmate/signup-recovery/internal/domain"
)

// Subject is the fixed subject line for every recovery email.
const Subject = "Your Elec-Mate account is waiting for you"

// FallbackName greets recipients with no name on file.
const FallbackName = "there"

// Renderer holds the parsed Liquid templates. Construct once, share freely;
// rendering is safe for concurrent use.
type Renderer struct {
	electrician *liquid.Template
	apprentice  *liquid.Template
}

var (
	defaultRenderer *Renderer
	defaultOnce     sync.Once
)

// Default returns the shared renderer, parsing the templates on first use.
// Parse failures are programmer errors in the static templates, hence panic.
func Default() *Renderer {
	defaultOnce.Do(func() {
		r, err := New()
		if err != nil {
			panic(fmt.Sprintf("template: %v", err))
		}
		defaultRenderer = r
	})
	return defaultRenderer
}

// New parses both template variants.
func New() (*Renderer, error) {
	engine := liquid.NewEngine()

	// {{ first_name | default: "there" }}: empty or missing values fall
	// back rather than rendering a broken greeting.
	engine.RegisterFilter("default", func(value interface{}, defaultVal string) interface{} {
		if value == nil {
			return defaultVal
		}
		if s := fmt.Sprintf("%v", value); s == "" || s == "<nil>" {
			return defaultVal
		}
		return value
	})

	elec, err := engine.ParseString(electricianHTML)
	if err != nil {
		return nil, fmt.Errorf("parse electrician template: %w", err)
	}
	appr, err := engine.ParseString(apprenticeHTML)
	if err != nil {
		return nil, fmt.Errorf("parse apprentice template: %w", err)
	}

	return &Renderer{electrician: elec, apprentice: appr}, nil
}

// Render produces the full HTML email body for one recipient.
// fullName may be empty; only its first whitespace-delimited token is used.
// Any role other than apprentice renders the electrician variant.
func (r *Renderer) Render(fullName string, role domain.Role, year int) (string, error) {
	bindings := map[string]interface{}{
		"first_name": FirstName(fullName),
		"year":       year,
	}

	tpl := r.electrician
	if role.Normalize() == domain.RoleApprentice {
		tpl = r.apprentice
	}

	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("render %s variant: %w", role.Normalize(), err)
	}
	return out, nil
}

// FirstName extracts the greeting token from a full name, falling back to a
// neutral term when nothing usable is on file.
func FirstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return FallbackName
	}
	return fields[0]
}
