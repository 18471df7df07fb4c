package listview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const manifestSchemaName = "listview.manifest"

var defaultSchemaValidator = NewSchemaValidator()

var manifestSchema = map[string]any{
	"type":     "object",
	"required": []string{"lists"},
	"properties": map[string]any{
		"version": map[string]any{"enum": []any{manifestVersionV1, 1}},
		"name":    map[string]any{"type": "string"},
		"lists": map[string]any{
			"type":  "array",
			"items": listDefinitionSchema,
		},
	},
	"additionalProperties": false,
}

var listDefinitionSchema = map[string]any{
	"type":     "object",
	"required": []string{"code", "resource"},
	"properties": map[string]any{
		"code":          map[string]any{"type": "string", "pattern": `^[a-z0-9][a-z0-9._-]*$`},
		"name":          map[string]any{"type": "string"},
		"description":   map[string]any{"type": "string"},
		"resource":      map[string]any{"type": "string", "minLength": 1},
		"page_size":     map[string]any{"type": "integer", "minimum": 1, "maximum": 500},
		"columns":       stringListSchema,
		"search_fields": stringListSchema,
		"sortable":      stringListSchema,
		"default_sort":  map[string]any{"type": "string", "pattern": `^$|^[A-Za-z0-9_]+(:(asc|desc))?$`},
		"fold_accents":  map[string]any{"type": "boolean"},
		"filters": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"key"},
				"properties": map[string]any{
					"key":     map[string]any{"type": "string", "minLength": 1},
					"field":   map[string]any{"type": "string"},
					"label":   map[string]any{"type": "string"},
					"options": stringListSchema,
				},
				"additionalProperties": false,
			},
		},
		"summary": map[string]any{
			"type":     "object",
			"required": []string{"group_by"},
			"properties": map[string]any{
				"group_by": map[string]any{"type": "string", "minLength": 1},
				"amount":   map[string]any{"type": "string"},
				"chart":    map[string]any{"type": "string", "enum": []string{"", "pie", "bar"}},
			},
			"additionalProperties": false,
		},
	},
	"additionalProperties": false,
}

var stringListSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string", "minLength": 1},
}

// SchemaValidator compiles JSON schemas once and validates payloads against them.
type SchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator builds a validator backed by jsonschema v5.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures payload satisfies the named schema. Payloads are normalized
// through JSON so YAML and Go values validate the same way.
func (v *SchemaValidator) Validate(name string, schema map[string]any, payload any) error {
	compiled, err := v.schemaFor(name, schema)
	if err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("listview: marshal payload for %s: %w", name, err)
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return fmt.Errorf("listview: normalize payload for %s: %w", name, err)
	}
	if err := compiled.Validate(normalized); err != nil {
		return fmt.Errorf("listview: %s failed validation: %w", name, err)
	}
	return nil
}

func (v *SchemaValidator) schemaFor(name string, schema map[string]any) (*jsonschema.Schema, error) {
	v.mu.RLock()
	compiled, ok := v.compiled[name]
	v.mu.RUnlock()
	if ok {
		return compiled, nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("listview: marshal schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("listview: load schema %s: %w", name, err)
	}
	compiled, err = compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("listview: compile schema %s: %w", name, err)
	}
	v.mu.Lock()
	v.compiled[name] = compiled
	v.mu.Unlock()
	return compiled, nil
}
