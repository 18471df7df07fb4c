package listview

import (
	"context"
	"fmt"
)

// Binding is a list definition bound to a concrete record type and source.
// It hides the record type so services and transports can hold many lists.
type Binding interface {
	Definition() ListDefinition
	InitialState() ViewState
	// Apply fetches records, restores state, runs mutate, and returns the new
	// state and view. Selections for records missing from the source are pruned.
	Apply(ctx context.Context, state ViewState, mutate func(Mutator) error) (ViewState, ViewPayload, error)
	Summarize(ctx context.Context, state ViewState) (SummaryPayload, error)
	Delete(ctx context.Context, ids []string) error
}

// Column describes a rendered table column.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// FilterPayload describes a filter control and its current value.
type FilterPayload struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options,omitempty"`
	Value   string   `json:"value,omitempty"`
}

// Row is a rendered record.
type Row struct {
	ID       string         `json:"id"`
	Selected bool           `json:"selected"`
	Values   map[string]any `json:"values"`
	Cells    []string       `json:"cells"`
}

// ViewPayload is the transport representation of a list view.
type ViewPayload struct {
	List       string          `json:"list"`
	Name       string          `json:"name"`
	Columns    []Column        `json:"columns"`
	Filters    []FilterPayload `json:"filters"`
	Rows       []Row           `json:"rows"`
	SearchTerm string          `json:"search_term"`
	Sort       SortState       `json:"sort"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	Total      int             `json:"total"`
	Selected   []string        `json:"selected_ids"`
	SelectAll  SelectAllState  `json:"select_all"`
	HasPrev    bool            `json:"has_prev"`
	HasNext    bool            `json:"has_next"`
}

// SummaryPayload carries list statistics. Summary covers the whole working set;
// Matching counts the records passing the current search and filters.
type SummaryPayload struct {
	List     string  `json:"list"`
	GroupBy  string  `json:"group_by,omitempty"`
	Summary  Summary `json:"summary"`
	Matching int     `json:"matching"`
	Chart    string  `json:"chart,omitempty"`
}

type binding[T any] struct {
	def     ListDefinition
	schema  *Schema[T]
	source  Source[T]
	cfg     Config[T]
	columns []Field[T]
	initial SortState
	group   Accessor[T]
	amount  Accessor[T]
}

// Bind resolves the field names of def against schema. Unknown names fail here.
func Bind[T any](def ListDefinition, schema *Schema[T], source Source[T]) (Binding, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, fmt.Errorf("%w: list %s has no schema", ErrInvalidConfig, def.Code)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: list %s", ErrMissingSource, def.Code)
	}
	b := &binding[T]{def: def, schema: schema, source: source}

	var err error
	if len(def.Columns) == 0 {
		b.columns = schema.Fields()
	} else if b.columns, err = schema.Resolve(def.Columns...); err != nil {
		return nil, fmt.Errorf("listview: list %s columns: %w", def.Code, err)
	}
	search, err := schema.Resolve(def.SearchFields...)
	if err != nil {
		return nil, fmt.Errorf("listview: list %s search fields: %w", def.Code, err)
	}
	filters := make([]Filter[T], 0, len(def.Filters))
	for _, fd := range def.Filters {
		name := fd.Field
		if name == "" {
			name = fd.Key
		}
		field, ok := schema.Field(name)
		if !ok {
			return nil, fmt.Errorf("listview: list %s filter %s: %w: %s", def.Code, fd.Key, ErrUnknownField, name)
		}
		label := fd.Label
		if label == "" {
			label = field.Label
		}
		filters = append(filters, Filter[T]{
			Key:     FilterKey(FieldName(fd.Key)),
			Label:   label,
			Options: fd.Options,
			Match:   field.Get,
		})
	}
	if b.initial, err = ParseSort(def.DefaultSort); err != nil {
		return nil, fmt.Errorf("listview: list %s: %w", def.Code, err)
	}
	if sum := def.Summary; sum != nil {
		group, ok := schema.Field(sum.GroupBy)
		if !ok {
			return nil, fmt.Errorf("listview: list %s summary: %w: %s", def.Code, ErrUnknownField, sum.GroupBy)
		}
		b.group = group.Get
		if sum.Amount != "" {
			amount, ok := schema.Field(sum.Amount)
			if !ok {
				return nil, fmt.Errorf("listview: list %s summary: %w: %s", def.Code, ErrUnknownField, sum.Amount)
			}
			b.amount = amount.Get
		}
	}
	b.cfg = Config[T]{
		Schema:       schema,
		SearchFields: search,
		Filters:      filters,
		Sortable:     def.Sortable,
		PageSize:     def.PageSize,
		Search:       SearchOptions{FoldDiacritics: def.FoldAccents},
	}
	// Build once so sortable and filter wiring errors surface at bind time.
	ctrl, err := NewController(b.cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("listview: list %s: %w", def.Code, err)
	}
	if err := ctrl.SetSort(b.initial); err != nil {
		return nil, fmt.Errorf("listview: list %s default sort: %w", def.Code, err)
	}
	return b, nil
}

func (b *binding[T]) Definition() ListDefinition { return b.def }

func (b *binding[T]) InitialState() ViewState {
	return ViewState{
		Filters:  Filters{},
		Sort:     b.initial,
		Page:     1,
		PageSize: b.cfg.PageSize,
	}
}

func (b *binding[T]) controller(ctx context.Context, state ViewState) (*Controller[T], error) {
	records, err := b.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listview: list %s source: %w", b.def.Code, err)
	}
	ctrl, err := NewController(b.cfg, records)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Restore(state); err != nil {
		return nil, err
	}
	ctrl.Prune(ctrl.recordIDs())
	return ctrl, nil
}

func (b *binding[T]) Apply(ctx context.Context, state ViewState, mutate func(Mutator) error) (ViewState, ViewPayload, error) {
	ctrl, err := b.controller(ctx, state)
	if err != nil {
		return ViewState{}, ViewPayload{}, err
	}
	if mutate != nil {
		if err := mutate(ctrl); err != nil {
			return ViewState{}, ViewPayload{}, err
		}
	}
	return ctrl.State(), b.payload(ctrl.View()), nil
}

func (b *binding[T]) Summarize(ctx context.Context, state ViewState) (SummaryPayload, error) {
	ctrl, err := b.controller(ctx, state)
	if err != nil {
		return SummaryPayload{}, err
	}
	out := SummaryPayload{
		List:     b.def.Code,
		Summary:  Summarize(ctrl.Records(), b.group, b.amount),
		Matching: len(ctrl.Filtered()),
	}
	if b.def.Summary != nil {
		out.GroupBy = FieldName(b.def.Summary.GroupBy)
	}
	return out, nil
}

func (b *binding[T]) Delete(ctx context.Context, ids []string) error {
	deleter, ok := b.source.(Deleter)
	if !ok {
		return fmt.Errorf("%w: list %s", ErrDeleteUnsupported, b.def.Code)
	}
	if len(ids) == 0 {
		return nil
	}
	return deleter.Delete(ctx, ids)
}

func (b *binding[T]) payload(view View[T]) ViewPayload {
	out := ViewPayload{
		List:       b.def.Code,
		Name:       b.def.Name,
		Columns:    make([]Column, len(b.columns)),
		Filters:    make([]FilterPayload, len(b.cfg.Filters)),
		Rows:       make([]Row, len(view.Rows)),
		SearchTerm: view.SearchTerm,
		Sort:       view.Sort,
		Page:       view.Page,
		PageSize:   view.PageSize,
		TotalPages: view.TotalPages,
		Total:      view.Total,
		Selected:   view.Selected,
		SelectAll:  view.SelectAll,
		HasPrev:    view.Page > 1,
		HasNext:    view.Page < view.TotalPages,
	}
	for i, col := range b.columns {
		out.Columns[i] = Column{Key: col.Name, Label: col.Label, Sortable: b.sortable(col.Name)}
	}
	for i, f := range b.cfg.Filters {
		out.Filters[i] = FilterPayload{
			Key:     string(f.Key),
			Label:   f.Label,
			Options: f.Options,
			Value:   view.Filters[f.Key],
		}
	}
	selected := make(map[string]struct{}, len(view.Selected))
	for _, id := range view.Selected {
		selected[id] = struct{}{}
	}
	for i, rec := range view.Rows {
		id := b.schema.ID(rec)
		_, isSelected := selected[id]
		row := Row{
			ID:       id,
			Selected: isSelected,
			Values:   make(map[string]any, len(b.columns)),
			Cells:    make([]string, len(b.columns)),
		}
		for j, col := range b.columns {
			value := col.Get(rec)
			row.Values[col.Name] = value.Interface()
			row.Cells[j] = value.Text()
		}
		out.Rows[i] = row
	}
	return out
}

func (b *binding[T]) sortable(name string) bool {
	if len(b.def.Sortable) == 0 {
		return true
	}
	for _, s := range b.def.Sortable {
		if FieldName(s) == name {
			return true
		}
	}
	return false
}
