package content

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"career-passport/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaError lists the violations of a document against its schema.
type SchemaError struct {
	Resource domain.Resource
	Errors   []FieldError
}

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s does not match its schema:", e.Resource))
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Validator checks content documents against the embedded schemas.
// Schemas are compiled on first use.
type Validator struct {
	mu      sync.Mutex
	schemas map[domain.Resource]*gojsonschema.Schema
}

func NewValidator() *Validator {
	return &Validator{schemas: make(map[domain.Resource]*gojsonschema.Schema)}
}

func (v *Validator) schema(r domain.Resource) (*gojsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[r]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile("schemas/" + string(r) + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("no schema for %s: %w", r, err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", r, err)
	}
	v.schemas[r] = s
	return s, nil
}

// Validate returns a *SchemaError when data violates the schema of r.
func (v *Validator) Validate(r domain.Resource, data []byte) error {
	s, err := v.schema(r)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", r, err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{
		Resource: r,
		Errors:   make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
