package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	listview "github.com/goliatone/go-listview/components/listview"
	"github.com/goliatone/go-listview/components/listview/commands"
	"github.com/goliatone/go-listview/components/listview/queries"
)

// ViewerHeader carries the viewer id when no ViewerFunc is configured.
const ViewerHeader = "X-User-ID"

// ViewerFunc resolves the viewer of a request.
type ViewerFunc func(*http.Request) listview.ViewerContext

// Handlers exposes list endpoints backed by shared commands. Mutations respond
// with the refreshed view.
type Handlers struct {
	API    Executor
	Viewer ViewerFunc
}

// Mount registers the handlers on mux under base, for example "/api/lists".
func (h *Handlers) Mount(mux *http.ServeMux, base string) {
	base = strings.TrimRight(base, "/")
	mux.HandleFunc("GET "+base, h.HandleLists)
	mux.HandleFunc("GET "+base+"/{list}", withList(h.HandleView))
	mux.HandleFunc("GET "+base+"/{list}/summary", withList(h.HandleSummary))
	mux.HandleFunc("POST "+base+"/{list}/search", withList(h.HandleSearch))
	mux.HandleFunc("POST "+base+"/{list}/filters", withList(h.HandleFilter))
	mux.HandleFunc("DELETE "+base+"/{list}/filters", withList(h.HandleClearFilters))
	mux.HandleFunc("POST "+base+"/{list}/sort", withList(h.HandleSort))
	mux.HandleFunc("POST "+base+"/{list}/page", withList(h.HandlePage))
	mux.HandleFunc("POST "+base+"/{list}/selection", withList(h.HandleSelect))
	mux.HandleFunc("DELETE "+base+"/{list}/selection", withList(h.HandleDeleteSelected))
	mux.HandleFunc("DELETE "+base+"/{list}/session", withList(h.HandleClose))
}

func withList(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, r.PathValue("list"))
	}
}

func (h *Handlers) HandleLists(w http.ResponseWriter, r *http.Request) {
	defs, err := h.API.Lists(r.Context(), h.viewer(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": defs})
}

func (h *Handlers) HandleView(w http.ResponseWriter, r *http.Request, list string) {
	h.respondView(w, r, list, http.StatusOK)
}

func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request, list string) {
	summary, err := h.API.Summary(r.Context(), queries.ViewInput{Viewer: h.viewer(r), List: list})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request, list string) {
	var payload commands.SearchInput
	if !decode(w, r, &payload) {
		return
	}
	payload.ListInput = h.input(r, list)
	h.mutate(w, r, list, func(ctx context.Context) error { return h.API.Search(ctx, payload) })
}

func (h *Handlers) HandleFilter(w http.ResponseWriter, r *http.Request, list string) {
	var payload commands.FilterInput
	if !decode(w, r, &payload) {
		return
	}
	payload.ListInput = h.input(r, list)
	h.mutate(w, r, list, func(ctx context.Context) error { return h.API.Filter(ctx, payload) })
}

func (h *Handlers) HandleClearFilters(w http.ResponseWriter, r *http.Request, list string) {
	payload := commands.FilterInput{ListInput: h.input(r, list), Clear: true}
	h.mutate(w, r, list, func(ctx context.Context) error { return h.API.Filter(ctx, payload) })
}

func (h *Handlers) HandleSort(w http.ResponseWriter, r *http.Request, list string) {
	var payload commands.SortInput
	if !decode(w, r, &payload) {
		return
	}
	payload.ListInput = h.input(r, list)
	h.mutate(w, r, list, func(ctx context.Context) error { return h.API.Sort(ctx, payload) })
}

func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request, list string) {
	var payload commands.PageInput
	if !decode(w, r, &payload) {
		return
	}
	payload.ListInput = h.input(r, list)
	h.mutate(w, r, list, func(ctx context.Context) error { return h.API.Page(ctx, payload) })
}

func (h *Handlers) HandleSelect(w http.ResponseWriter, r *http.Request, list string) {
	var payload commands.SelectInput
	if !decode(w, r, &payload) {
		return
	}
	payload.ListInput = h.input(r, list)
	h.mutate(w, r, list, func(ctx context.Context) error { return h.API.Select(ctx, payload) })
}

func (h *Handlers) HandleDeleteSelected(w http.ResponseWriter, r *http.Request, list string) {
	result, err := h.API.DeleteSelected(r.Context(), commands.DeleteSelectedInput{ListInput: h.input(r, list)})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) HandleClose(w http.ResponseWriter, r *http.Request, list string) {
	if err := h.API.Close(r.Context(), commands.CloseInput{ListInput: h.input(r, list)}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) mutate(w http.ResponseWriter, r *http.Request, list string, fn func(context.Context) error) {
	if err := fn(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.respondView(w, r, list, http.StatusOK)
}

func (h *Handlers) respondView(w http.ResponseWriter, r *http.Request, list string, status int) {
	view, err := h.API.View(r.Context(), queries.ViewInput{Viewer: h.viewer(r), List: list})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, view)
}

func (h *Handlers) input(r *http.Request, list string) commands.ListInput {
	return commands.ListInput{Viewer: h.viewer(r), List: list}
}

func (h *Handlers) viewer(r *http.Request) listview.ViewerContext {
	if h.Viewer != nil {
		return h.Viewer(r)
	}
	return DefaultViewer(r)
}

// DefaultViewer reads the viewer id from ViewerHeader and the locale from
// Accept-Language.
func DefaultViewer(r *http.Request) listview.ViewerContext {
	return listview.ViewerContext{
		UserID: strings.TrimSpace(r.Header.Get(ViewerHeader)),
		Locale: ParseAcceptLanguage(r.Header.Get("Accept-Language")),
	}
}

// ParseAcceptLanguage returns the first language tag of header, lower cased.
func ParseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = strings.TrimSpace(token[:idx])
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

// StatusFor maps list errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, listview.ErrUnknownList):
		return http.StatusNotFound
	case errors.Is(err, listview.ErrUnknownFilter),
		errors.Is(err, listview.ErrUnknownField),
		errors.Is(err, listview.ErrNotSortable):
		return http.StatusBadRequest
	case errors.Is(err, listview.ErrDeleteUnsupported), errors.Is(err, ErrNotConfigured):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
