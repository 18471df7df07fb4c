package listview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// ListManifestDocument describes the list pages of an admin console.
type ListManifestDocument struct {
	Version string           `json:"version" yaml:"version"`
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Lists   []ListDefinition `json:"lists" yaml:"lists"`
	Source  string           `json:"-" yaml:"-"`
}

// ListDefinition configures one list page by field name.
type ListDefinition struct {
	Code         string             `json:"code" yaml:"code"`
	Name         string             `json:"name" yaml:"name"`
	Description  string             `json:"description,omitempty" yaml:"description,omitempty"`
	Resource     string             `json:"resource" yaml:"resource"`
	PageSize     int                `json:"page_size,omitempty" yaml:"page_size,omitempty"`
	Columns      []string           `json:"columns,omitempty" yaml:"columns,omitempty"`
	SearchFields []string           `json:"search_fields,omitempty" yaml:"search_fields,omitempty"`
	Filters      []FilterDefinition `json:"filters,omitempty" yaml:"filters,omitempty"`
	Sortable     []string           `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	DefaultSort  string             `json:"default_sort,omitempty" yaml:"default_sort,omitempty"`
	Summary      *SummaryDefinition `json:"summary,omitempty" yaml:"summary,omitempty"`
	FoldAccents  bool               `json:"fold_accents,omitempty" yaml:"fold_accents,omitempty"`
}

// FilterDefinition binds a filter key to an exact-match record field.
type FilterDefinition struct {
	Key     string   `json:"key" yaml:"key"`
	Field   string   `json:"field,omitempty" yaml:"field,omitempty"`
	Label   string   `json:"label,omitempty" yaml:"label,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// SummaryDefinition selects the grouping and amount fields of list statistics.
type SummaryDefinition struct {
	GroupBy string `json:"group_by" yaml:"group_by"`
	Amount  string `json:"amount,omitempty" yaml:"amount,omitempty"`
	Chart   string `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// ReadManifest loads a manifest file from disk.
func ReadManifest(path string) (*ListManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("listview: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("listview: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads, schema-validates, and decodes a manifest.
func DecodeManifest(r io.Reader) (*ListManifestDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("listview: read manifest: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("listview: manifest is empty")
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("listview: parse manifest: %w", err)
	}
	if err := defaultSchemaValidator.Validate(manifestSchemaName, manifestSchema, raw); err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var doc ListManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("listview: manifest is empty")
		}
		return nil, fmt.Errorf("listview: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeManifest writes doc as YAML.
func EncodeManifest(w io.Writer, doc *ListManifestDocument) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("listview: write manifest: %w", err)
	}
	return encoder.Close()
}

// Validate checks the cross-entry rules the JSON schema cannot express.
func (doc *ListManifestDocument) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("listview: unsupported manifest version %q", doc.Version)
	}
	seen := make(map[string]struct{}, len(doc.Lists))
	for idx, def := range doc.Lists {
		if def.Code == "" {
			return fmt.Errorf("listview: manifest list at index %d is missing code", idx)
		}
		if _, exists := seen[def.Code]; exists {
			return fmt.Errorf("listview: manifest duplicates list code %s", def.Code)
		}
		seen[def.Code] = struct{}{}
		if err := def.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single definition.
func (def ListDefinition) Validate() error {
	if def.Code == "" {
		return fmt.Errorf("%w: list code is required", ErrInvalidConfig)
	}
	if def.Resource == "" {
		return fmt.Errorf("%w: list %s is missing resource", ErrInvalidConfig, def.Code)
	}
	if def.PageSize < 0 {
		return fmt.Errorf("%w: list %s has negative page_size", ErrInvalidConfig, def.Code)
	}
	keys := make(map[string]struct{}, len(def.Filters))
	for _, f := range def.Filters {
		key := FieldName(f.Key)
		if _, dup := keys[key]; dup {
			return fmt.Errorf("%w: list %s duplicates filter %s", ErrInvalidConfig, def.Code, key)
		}
		keys[key] = struct{}{}
	}
	if _, err := ParseSort(def.DefaultSort); err != nil {
		return fmt.Errorf("%w: list %s: %v", ErrInvalidConfig, def.Code, err)
	}
	return nil
}

// List returns the definition with code.
func (doc *ListManifestDocument) List(code string) (ListDefinition, bool) {
	for _, def := range doc.Lists {
		if def.Code == code {
			return def, true
		}
	}
	return ListDefinition{}, false
}

func (doc *ListManifestDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
	for i := range doc.Lists {
		if doc.Lists[i].Name == "" {
			doc.Lists[i].Name = labelFor(FieldName(doc.Lists[i].Code))
		}
		if doc.Lists[i].PageSize == 0 {
			doc.Lists[i].PageSize = DefaultPageSize
		}
	}
}
