package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema/case.schema.json
var caseSchemaSource string

var caseSchema = mustCompileSchema(caseSchemaSource)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("config: invalid embedded case schema: %v", err))
	}
	return schema
}

// FieldProblem is one structural problem found in a case file.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError lists every structural problem of a case file.
type SchemaError struct {
	Problems []FieldProblem
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Message
	}
	return "invalid case file: " + strings.Join(parts, "; ")
}

// Field returns the first offending field.
func (e *SchemaError) Field() string {
	if len(e.Problems) == 0 {
		return ""
	}
	return e.Problems[0].Field
}

// Is makes structural problems match domain.ErrValidation like engine
// validation errors.
func (e *SchemaError) Is(target error) bool { return target == domain.ErrValidation }

// InputParser handles parsing of case files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.CaseFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cf, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cf, nil
}

// Parse decodes and validates a case document. The document is first checked
// against the case schema, then decoded, then validated by the engine rules.
func (ip *InputParser) Parse(data []byte) (*domain.CaseFile, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return nil, &SchemaError{Problems: []FieldProblem{{Field: "(root)", Message: "document is empty"}}}
	}
	if err := ip.ValidateDocument(normalizeDates(raw).(map[string]interface{})); err != nil {
		return nil, err
	}

	var cf domain.CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to decode case: %w", err)
	}

	if err := ip.ValidateCase(&cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// ValidateDocument checks a generic document against the case schema.
func (ip *InputParser) ValidateDocument(doc map[string]interface{}) error {
	result, err := caseSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]FieldProblem, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			if p, ok := desc.Details()["property"]; ok {
				field = fmt.Sprint(p)
			}
		}
		problems = append(problems, FieldProblem{Field: field, Message: desc.Description()})
	}
	return &SchemaError{Problems: problems}
}

// ValidateCase applies the calculation rules and the offer history rules.
func (ip *InputParser) ValidateCase(cf *domain.CaseFile) error {
	if err := calculation.Validate(&cf.CalculationInput); err != nil {
		return err
	}
	for i, offer := range cf.Offers {
		if offer.Amount.IsNegative() {
			return &domain.NegativeAmountError{Name: fmt.Sprintf("offres[%d].montant", i), Value: offer.Amount}
		}
	}
	return nil
}

// normalizeDates rewrites YAML timestamps (unquoted 2026-01-15) back to their
// calendar date so the schema sees the text the author wrote.
func normalizeDates(v interface{}) interface{} {
	switch val := v.(type) {
	case time.Time:
		return val.Format("2006-01-02")
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalizeDates(item)
		}
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeDates(item)
		}
	}
	return v
}
