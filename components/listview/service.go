package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var errMissingList = errors.New("listview: list code is required")

// ChartRenderer turns list statistics into chart markup.
type ChartRenderer interface {
	RenderSummary(title, chartType string, summary Summary) (string, error)
}

// Options configures the list Service. Collaborators are interfaces so
// applications can swap implementations.
type Options struct {
	Registry  *Registry
	Sessions  SessionStore
	Telemetry Telemetry
	Charts    ChartRenderer
}

// Service keeps one list session per viewer and list, delegating every
// operation to the bound list controller.
type Service struct {
	opts Options

	mu       sync.RWMutex
	bindings map[string]Binding
	locks    map[SessionKey]*sessionLock
}

// sessionLock is dropped from Service.locks once no operation holds or awaits it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Sessions == nil {
		opts.Sessions = NewInMemorySessionStore()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{
		opts:     opts,
		bindings: map[string]Binding{},
		locks:    map[SessionKey]*sessionLock{},
	}
}

// Register adds a bound list and records its definition in the registry.
func (s *Service) Register(b Binding) error {
	if b == nil {
		return fmt.Errorf("%w: binding is nil", ErrInvalidConfig)
	}
	def := b.Definition()
	if err := s.opts.Registry.RegisterDefinition(def); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[def.Code] = b
	return nil
}

// Registry exposes the definitions registry.
func (s *Service) Registry() *Registry { return s.opts.Registry }

// Lists returns the definitions of every bound list.
func (s *Service) Lists() []ListDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ListDefinition, 0, len(s.bindings))
	for _, def := range s.opts.Registry.Definitions() {
		if _, ok := s.bindings[def.Code]; ok {
			out = append(out, def)
		}
	}
	return out
}

// View returns the current view without changing state.
func (s *Service) View(ctx context.Context, viewer ViewerContext, list string) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "", nil, nil)
}

// SetSearchTerm updates the free text query; the view returns to page one.
func (s *Service) SetSearchTerm(ctx context.Context, viewer ViewerContext, list, term string) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "listview.search", map[string]any{"term": term}, func(m Mutator) error {
		m.SetSearchTerm(term)
		return nil
	})
}

// SetFilter sets or clears one filter; the view returns to page one.
func (s *Service) SetFilter(ctx context.Context, viewer ViewerContext, list, key, value string) (ViewPayload, error) {
	filterKey := FilterKey(FieldName(key))
	return s.mutate(ctx, viewer, list, "listview.filter", map[string]any{"key": string(filterKey), "value": value}, func(m Mutator) error {
		return m.SetFilter(filterKey, value)
	})
}

// ClearFilters drops every filter; the view returns to page one.
func (s *Service) ClearFilters(ctx context.Context, viewer ViewerContext, list string) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "listview.filter", map[string]any{"cleared": true}, func(m Mutator) error {
		m.ClearFilters()
		return nil
	})
}

// RequestSort applies a column header click.
func (s *Service) RequestSort(ctx context.Context, viewer ViewerContext, list, key string) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "listview.sort", map[string]any{"key": FieldName(key)}, func(m Mutator) error {
		return m.RequestSort(key)
	})
}

// SetPage moves to page, clamped to the available pages.
func (s *Service) SetPage(ctx context.Context, viewer ViewerContext, list string, page int) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "listview.page", map[string]any{"page": page}, func(m Mutator) error {
		m.SetPage(page)
		return nil
	})
}

// Select toggles one record.
func (s *Service) Select(ctx context.Context, viewer ViewerContext, list, id string, checked bool) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "listview.select", map[string]any{"id": id, "checked": checked}, func(m Mutator) error {
		m.SelectOne(id, checked)
		return nil
	})
}

// SelectAllVisible toggles every record on the current page.
func (s *Service) SelectAllVisible(ctx context.Context, viewer ViewerContext, list string, checked bool) (ViewPayload, error) {
	return s.mutate(ctx, viewer, list, "listview.select", map[string]any{"all": true, "checked": checked}, func(m Mutator) error {
		m.SelectAllVisible(checked)
		return nil
	})
}

// SelectedIDs returns the pruned selection, ready for a bulk action.
func (s *Service) SelectedIDs(ctx context.Context, viewer ViewerContext, list string) ([]string, error) {
	view, err := s.View(ctx, viewer, list)
	if err != nil {
		return nil, err
	}
	return view.Selected, nil
}

// DeleteSelected removes the selected records from the source and returns how
// many ids were submitted. The selection is pruned against the new record set.
func (s *Service) DeleteSelected(ctx context.Context, viewer ViewerContext, list string) (int, ViewPayload, error) {
	b, err := s.binding(list)
	if err != nil {
		return 0, ViewPayload{}, err
	}
	key := SessionKey{UserID: viewer.UserID, List: list}
	unlock := s.lock(key)
	defer unlock()

	state, err := s.load(ctx, key, b)
	if err != nil {
		return 0, ViewPayload{}, err
	}
	current, _, err := b.Apply(ctx, state, nil)
	if err != nil {
		return 0, ViewPayload{}, s.sourceError(ctx, list, err)
	}
	ids := current.Selected
	if err := b.Delete(ctx, ids); err != nil {
		return 0, ViewPayload{}, err
	}
	next, view, err := b.Apply(ctx, current, nil)
	if err != nil {
		return 0, ViewPayload{}, s.sourceError(ctx, list, err)
	}
	if err := s.opts.Sessions.Save(ctx, key, next); err != nil {
		return 0, ViewPayload{}, err
	}
	s.recordTelemetry(ctx, "listview.delete", map[string]any{
		"list":   list,
		"viewer": viewer.UserID,
		"count":  len(ids),
	})
	return len(ids), view, nil
}

// Summary returns list statistics and, when configured, a chart.
func (s *Service) Summary(ctx context.Context, viewer ViewerContext, list string) (SummaryPayload, error) {
	b, err := s.binding(list)
	if err != nil {
		return SummaryPayload{}, err
	}
	key := SessionKey{UserID: viewer.UserID, List: list}
	unlock := s.lock(key)
	defer unlock()

	state, err := s.load(ctx, key, b)
	if err != nil {
		return SummaryPayload{}, err
	}
	summary, err := b.Summarize(ctx, state)
	if err != nil {
		return SummaryPayload{}, s.sourceError(ctx, list, err)
	}
	def := b.Definition()
	if s.opts.Charts != nil && def.Summary != nil && def.Summary.Chart != "" {
		chart, err := s.opts.Charts.RenderSummary(def.Name, def.Summary.Chart, summary.Summary)
		if err != nil {
			return SummaryPayload{}, fmt.Errorf("listview: render %s chart: %w", list, err)
		}
		summary.Chart = chart
	}
	return summary, nil
}

// Close discards the viewer's session, as when the list page unmounts.
func (s *Service) Close(ctx context.Context, viewer ViewerContext, list string) error {
	if list == "" {
		return errMissingList
	}
	key := SessionKey{UserID: viewer.UserID, List: list}
	unlock := s.lock(key)
	defer unlock()
	if err := s.opts.Sessions.Delete(ctx, key); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "listview.close", map[string]any{"list": list, "viewer": viewer.UserID})
	return nil
}

func (s *Service) mutate(ctx context.Context, viewer ViewerContext, list, event string, payload map[string]any, fn func(Mutator) error) (ViewPayload, error) {
	b, err := s.binding(list)
	if err != nil {
		return ViewPayload{}, err
	}
	key := SessionKey{UserID: viewer.UserID, List: list}
	unlock := s.lock(key)
	defer unlock()

	state, err := s.load(ctx, key, b)
	if err != nil {
		return ViewPayload{}, err
	}
	next, view, err := b.Apply(ctx, state, fn)
	if err != nil {
		if errors.Is(err, ErrUnknownFilter) || errors.Is(err, ErrUnknownField) || errors.Is(err, ErrNotSortable) {
			return ViewPayload{}, err
		}
		return ViewPayload{}, s.sourceError(ctx, list, err)
	}
	if err := s.opts.Sessions.Save(ctx, key, next); err != nil {
		return ViewPayload{}, err
	}
	if event != "" {
		if payload == nil {
			payload = map[string]any{}
		}
		payload["list"] = list
		payload["viewer"] = viewer.UserID
		payload["page"] = view.Page
		s.recordTelemetry(ctx, event, payload)
	}
	return view, nil
}

func (s *Service) load(ctx context.Context, key SessionKey, b Binding) (ViewState, error) {
	state, ok, err := s.opts.Sessions.Load(ctx, key)
	if err != nil {
		return ViewState{}, err
	}
	if !ok {
		return b.InitialState(), nil
	}
	return state, nil
}

func (s *Service) binding(list string) (Binding, error) {
	if list == "" {
		return nil, errMissingList
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bindings[list]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, list)
	}
	return b, nil
}

// lock serializes operations on one session; different sessions run in parallel.
func (s *Service) lock(key SessionKey) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sessionLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

func (s *Service) sourceError(ctx context.Context, list string, err error) error {
	s.recordTelemetry(ctx, "listview.source_error", map[string]any{
		"list":  list,
		"error": err.Error(),
	})
	return err
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
