package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ettle/strcase"

	"github.com/goliatone/go-listview/components/listview"
)

type scaffoldCmd struct {
	Code         string   `required:"" help:"List code (e.g. crm.leads)."`
	Name         string   `help:"Display name (defaults to the title-cased code)."`
	Description  string   `help:"One-line description."`
	Resource     string   `help:"Record resource backing the list (defaults to the last code segment)."`
	ManifestPath string   `required:"" type:"path" help:"Manifest YAML file to update."`
	Column       []string `help:"Column field (repeatable)."`
	Search       []string `help:"Searchable field (repeatable, defaults to the first column)."`
	Filter       []string `help:"Exact-match filter field (repeatable)."`
	Sortable     []string `help:"Sortable field (repeatable, defaults to every column)."`
	PageSize     int      `default:"10" help:"Rows per page."`
	Overwrite    bool     `help:"Replace an existing list with the same code."`
}

func (cmd *scaffoldCmd) Run(_ context.Context, g *Globals) error {
	path, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("listctl: resolve manifest path: %w", err)
	}
	doc, err := loadOrInitManifest(path)
	if err != nil {
		return err
	}
	def := cmd.definition()
	if err := def.Validate(); err != nil {
		return err
	}

	idx := slices.IndexFunc(doc.Lists, func(l listview.ListDefinition) bool { return l.Code == def.Code })
	switch {
	case idx >= 0 && !cmd.Overwrite:
		return fmt.Errorf("listctl: manifest already defines list %s (use --overwrite to replace)", def.Code)
	case idx >= 0:
		doc.Lists[idx] = def
	default:
		doc.Lists = append(doc.Lists, def)
	}
	slices.SortFunc(doc.Lists, func(a, b listview.ListDefinition) int { return strings.Compare(a.Code, b.Code) })

	if err := doc.Validate(); err != nil {
		return err
	}
	if err := writeManifest(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(g.writer(), "✓ Added %s to %s\n", def.Code, path)
	return nil
}

func (cmd *scaffoldCmd) definition() listview.ListDefinition {
	slug := lastSegment(cmd.Code)
	columns := fieldNames(cmd.Column)
	def := listview.ListDefinition{
		Code:         cmd.Code,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Resource:     cmd.Resource,
		PageSize:     cmd.PageSize,
		Columns:      columns,
		SearchFields: fieldNames(cmd.Search),
		Sortable:     fieldNames(cmd.Sortable),
	}
	if def.Name == "" {
		def.Name = strings.Join(strings.Fields(strcase.ToCase(slug, strcase.TitleCase, ' ')), " ")
	}
	if def.Resource == "" {
		def.Resource = strcase.ToSnake(slug)
	}
	if len(def.SearchFields) == 0 && len(columns) > 0 {
		def.SearchFields = columns[:1]
	}
	if len(def.Sortable) == 0 {
		def.Sortable = columns
	}
	for _, f := range fieldNames(cmd.Filter) {
		def.Filters = append(def.Filters, listview.FilterDefinition{Key: f, Field: f})
	}
	return def
}

func fieldNames(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if name := listview.FieldName(r); name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func lastSegment(code string) string {
	parts := strings.Split(code, ".")
	if slug := strings.TrimSpace(parts[len(parts)-1]); slug != "" {
		return slug
	}
	return code
}

func loadOrInitManifest(path string) (*listview.ListManifestDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &listview.ListManifestDocument{
				Version: listview.ManifestVersion,
				Lists:   []listview.ListDefinition{},
				Source:  path,
			}, nil
		}
		return nil, fmt.Errorf("listctl: stat manifest: %w", err)
	}
	return listview.ReadManifest(path)
}

func writeManifest(path string, doc *listview.ListManifestDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("listctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("listctl: create manifest %s: %w", path, err)
	}
	defer file.Close()
	if err := listview.EncodeManifest(file, doc); err != nil {
		return fmt.Errorf("listctl: write manifest: %w", err)
	}
	return nil
}
