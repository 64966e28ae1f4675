package quiz

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/avelk/marketmath/internal/market"
)

// ErrNoTemplates is returned when generation is attempted with an empty
// template set (typically after a failed template load).
var ErrNoTemplates = errors.New("no question templates loaded")

// ErrNoDataset is returned when generation is attempted before any
// dataset has been synthesized.
var ErrNoDataset = errors.New("no dataset available")

// ErrUnscorable is returned when the selected template's answer could not
// be computed; the caller must treat this as "no question generated".
var ErrUnscorable = errors.New("question answer unavailable")

// Question is one rendered question with its expected answer.
type Question struct {
	// Text is the question with all placeholders resolved.
	Text string

	// Answer is the computed expected answer.
	Answer Answer

	// Type is the formula that produced the answer.
	Type FormulaType

	// Variables holds the bound item identifiers, for display and
	// debugging.
	Variables map[string]string
}

// Generator produces questions from a template set and a random source.
type Generator struct {
	templates []Template
	rng       *rand.Rand
}

// NewGenerator creates a Generator. The template set may be empty, in
// which case Generate returns ErrNoTemplates.
func NewGenerator(templates []Template, rng *rand.Rand) *Generator {
	return &Generator{templates: templates, rng: rng}
}

// HasTemplates reports whether any templates are loaded.
func (g *Generator) HasTemplates() bool {
	return len(g.templates) > 0
}

// Generate picks a template uniformly at random, binds its variables
// against the dataset's items, computes the expected answer, and renders
// the question text.
func (g *Generator) Generate(ds *market.Dataset) (*Question, error) {
	if len(g.templates) == 0 {
		return nil, ErrNoTemplates
	}
	if ds == nil {
		return nil, ErrNoDataset
	}

	tmpl := g.templates[g.rng.Intn(len(g.templates))]
	vars := BindVariables(g.rng, tmpl.Variables, ds.Order)

	answer := Compute(tmpl.Type, vars, ds)
	if !answer.IsAvailable() {
		return nil, ErrUnscorable
	}

	return &Question{
		Text:      renderTemplate(tmpl.Text, vars),
		Answer:    answer,
		Type:      tmpl.Type,
		Variables: vars,
	}, nil
}

// renderTemplate substitutes {name} placeholders with bound values.
// Unbound placeholders are left verbatim.
func renderTemplate(text string, vars map[string]string) string {
	for name, value := range vars {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
