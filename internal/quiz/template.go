package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Template is one parameterized question: a formula name, a text with
// {varName} placeholders, and the ordered variable names to bind.
type Template struct {
	Type      FormulaType `json:"type"`
	Text      string      `json:"template"`
	Variables []string    `json:"variables"`
}

//go:embed templates.json
var defaultTemplates []byte

//go:embed template_schema.json
var templateSchema []byte

// compiledSchema caches the compiled template schema.
var compiledSchema struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// DefaultTemplates returns the embedded template set covering all twelve
// formulas. The embedded file is validated like any other source, so a bad
// edit fails loudly at startup instead of producing unscorable questions.
func DefaultTemplates() ([]Template, error) {
	return parseTemplates(defaultTemplates)
}

// LoadTemplates reads and validates a template file. On any failure it
// returns an error and no templates; the caller reports the failure once
// and continues with an empty set.
func LoadTemplates(path string) ([]Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	templates, err := parseTemplates(raw)
	if err != nil {
		return nil, fmt.Errorf("templates %s: %w", path, err)
	}
	return templates, nil
}

// parseTemplates validates raw JSON against the template schema, then
// decodes it.
func parseTemplates(raw []byte) ([]Template, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var templates []Template
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	return templates, nil
}

// getCompiledSchema returns the cached compiled schema, compiling it on
// first use.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledSchema.once.Do(func() {
		var def any
		if err := json.Unmarshal(templateSchema, &def); err != nil {
			compiledSchema.err = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-templates.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compiledSchema.err = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema.schema, compiledSchema.err = c.Compile(schemaURL)
	})
	return compiledSchema.schema, compiledSchema.err
}
