package listview

import (
	"fmt"
	"slices"
)

// Config wires a record schema into a list controller. Field and filter
// references are resolved up front so configuration mistakes surface when the
// controller is built, not while rendering.
type Config[T any] struct {
	Schema       *Schema[T]
	SearchFields []Field[T]
	Filters      []Filter[T]
	// Sortable restricts RequestSort; empty means every schema field.
	Sortable []string
	PageSize int
	Search   SearchOptions
}

// ViewState is the serializable state owned by a controller.
type ViewState struct {
	SearchTerm string    `json:"search_term,omitempty"`
	Filters    Filters   `json:"filters,omitempty"`
	Sort       SortState `json:"sort"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Selected   []string  `json:"selected_ids,omitempty"`
}

// View is the derived, render-ready projection of the controller state.
type View[T any] struct {
	Rows       []T
	Page       int
	PageSize   int
	TotalPages int
	// Total counts records after search and filters.
	Total      int
	SearchTerm string
	Filters    Filters
	Sort       SortState
	Selected   []string
	SelectAll  SelectAllState
}

// Mutator is the record type agnostic subset of controller operations used by
// transports.
type Mutator interface {
	SetSearchTerm(term string)
	SetFilter(key FilterKey, value string) error
	ClearFilters()
	RequestSort(key string) error
	SetPage(page int) int
	SelectOne(id string, checked bool)
	SelectAllVisible(checked bool)
	Prune(valid []string) int
	SelectedIDs() []string
}

// Controller applies search, filters, sort, pagination, and selection to a
// working set of records. It is not safe for concurrent use.
type Controller[T any] struct {
	cfg       Config[T]
	filters   map[FilterKey]Filter[T]
	sortable  map[string]struct{}
	records   []T
	search    string
	active    Filters
	sort      SortState
	page      int
	selection *Selection
}

var _ Mutator = (*Controller[struct{}])(nil)

// NewController validates cfg and returns a controller in its initial state.
func NewController[T any](cfg Config[T], records []T) (*Controller[T], error) {
	if cfg.Schema == nil {
		return nil, fmt.Errorf("%w: schema is required", ErrInvalidConfig)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	c := &Controller[T]{
		cfg:       cfg,
		filters:   make(map[FilterKey]Filter[T], len(cfg.Filters)),
		active:    Filters{},
		page:      1,
		selection: NewSelection(),
	}
	for _, f := range cfg.Filters {
		if f.Key == "" || f.Match == nil {
			return nil, fmt.Errorf("%w: filter %q requires a key and matcher", ErrInvalidConfig, f.Key)
		}
		if _, dup := c.filters[f.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate filter %s", ErrInvalidConfig, f.Key)
		}
		c.filters[f.Key] = f
	}
	if len(cfg.Sortable) > 0 {
		c.sortable = make(map[string]struct{}, len(cfg.Sortable))
		for _, name := range cfg.Sortable {
			if _, ok := cfg.Schema.Field(name); !ok {
				return nil, fmt.Errorf("%w: sortable %s", ErrUnknownField, name)
			}
			c.sortable[FieldName(name)] = struct{}{}
		}
	}
	c.records = slices.Clone(records)
	return c, nil
}

// SetRecords replaces the working set, prunes selections for vanished records,
// and clamps the current page to the new result set.
func (c *Controller[T]) SetRecords(records []T) {
	c.records = slices.Clone(records)
	c.Prune(c.recordIDs())
	c.page = clamp(c.page, 1, c.totalPages())
}

// SetSearchTerm updates the free text query and returns to page one.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.search = term
	c.page = 1
}

// SetFilter sets or clears (empty value) a single filter and returns to page
// one. Unknown keys are rejected without changing state.
func (c *Controller[T]) SetFilter(key FilterKey, value string) error {
	if _, ok := c.filters[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFilter, key)
	}
	if value == "" {
		delete(c.active, key)
	} else {
		c.active[key] = value
	}
	c.page = 1
	return nil
}

// SetFilters replaces every active filter and returns to page one.
func (c *Controller[T]) SetFilters(filters Filters) error {
	if err := c.checkFilters(filters); err != nil {
		return err
	}
	c.active = filters.Clone()
	c.page = 1
	return nil
}

func (c *Controller[T]) checkFilters(filters Filters) error {
	for key := range filters {
		if _, ok := c.filters[key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFilter, key)
		}
	}
	return nil
}

// ClearFilters drops all active filters and returns to page one.
func (c *Controller[T]) ClearFilters() {
	c.active = Filters{}
	c.page = 1
}

// RequestSort applies the header click policy for key. The page is kept.
func (c *Controller[T]) RequestSort(key string) error {
	return c.SetSort(NextSort(c.sort, key))
}

// SetSort sets the sort state directly. An empty key restores input order.
func (c *Controller[T]) SetSort(state SortState) error {
	state, err := c.resolveSort(state)
	if err != nil {
		return err
	}
	c.sort = state
	return nil
}

func (c *Controller[T]) resolveSort(state SortState) (SortState, error) {
	state = state.normalized()
	if !state.Active() {
		return state, nil
	}
	state.Key = FieldName(state.Key)
	if err := c.checkSortable(state.Key); err != nil {
		return SortState{}, err
	}
	return state, nil
}

func (c *Controller[T]) checkSortable(key string) error {
	if _, ok := c.cfg.Schema.Field(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if c.sortable == nil {
		return nil
	}
	if _, ok := c.sortable[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotSortable, key)
	}
	return nil
}

// SetPage moves to page, clamped to [1, totalPages], and returns the page
// actually applied.
func (c *Controller[T]) SetPage(page int) int {
	c.page = clamp(page, 1, c.totalPages())
	return c.page
}

// SelectOne toggles a single record.
func (c *Controller[T]) SelectOne(id string, checked bool) {
	c.selection.Select(id, checked)
}

// SelectAllVisible adds or removes the records on the current page only.
func (c *Controller[T]) SelectAllVisible(checked bool) {
	c.selection.SelectAll(c.visibleIDs(c.derive().Visible), checked)
}

// Prune removes selected ids missing from valid.
func (c *Controller[T]) Prune(valid []string) int {
	return c.selection.Prune(valid)
}

// SelectedIDs returns the selection in sorted order.
func (c *Controller[T]) SelectedIDs() []string {
	return c.selection.IDs()
}

// Records returns the current working set.
func (c *Controller[T]) Records() []T {
	return slices.Clone(c.records)
}

// Filtered returns every record passing search and filters, in sort order.
func (c *Controller[T]) Filtered() []T {
	return c.sorted()
}

// View derives the visible page and selection state.
func (c *Controller[T]) View() View[T] {
	page := c.derive()
	visible := c.visibleIDs(page.Visible)
	return View[T]{
		Rows:       page.Visible,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		SearchTerm: c.search,
		Filters:    c.active.Clone(),
		Sort:       c.sort,
		Selected:   c.selection.IDs(),
		SelectAll:  c.selection.Status(visible),
	}
}

// State snapshots the controller state.
func (c *Controller[T]) State() ViewState {
	return ViewState{
		SearchTerm: c.search,
		Filters:    c.active.Clone(),
		Sort:       c.sort,
		Page:       c.page,
		PageSize:   c.cfg.PageSize,
		Selected:   c.selection.IDs(),
	}
}

// Restore loads a snapshot without applying the page reset rules. An invalid
// snapshot leaves the controller untouched. The page size stays fixed to the
// controller configuration.
func (c *Controller[T]) Restore(state ViewState) error {
	if err := c.checkFilters(state.Filters); err != nil {
		return err
	}
	sortState, err := c.resolveSort(state.Sort)
	if err != nil {
		return err
	}
	c.active = state.Filters.Clone()
	c.sort = sortState
	c.search = state.SearchTerm
	c.selection = NewSelection(state.Selected...)
	c.page = clamp(state.Page, 1, c.totalPages())
	return nil
}

func (c *Controller[T]) sorted() []T {
	filtered := evaluate(c.records, c.search, c.cfg.SearchFields, c.cfg.Filters, c.active, c.cfg.Search)
	if !c.sort.Active() {
		return filtered
	}
	field, ok := c.cfg.Schema.Field(c.sort.Key)
	if !ok {
		return filtered
	}
	return Sort(filtered, &field, c.sort.Direction)
}

func (c *Controller[T]) derive() Page[T] {
	records := c.sorted()
	page := clamp(c.page, 1, TotalPages(len(records), c.cfg.PageSize))
	return Paginate(records, page, c.cfg.PageSize)
}

func (c *Controller[T]) totalPages() int {
	filtered := evaluate(c.records, c.search, c.cfg.SearchFields, c.cfg.Filters, c.active, c.cfg.Search)
	return TotalPages(len(filtered), c.cfg.PageSize)
}

func (c *Controller[T]) visibleIDs(rows []T) []string {
	ids := make([]string, len(rows))
	for i, rec := range rows {
		ids[i] = c.cfg.Schema.ID(rec)
	}
	return ids
}

func (c *Controller[T]) recordIDs() []string {
	return c.visibleIDs(c.records)
}
