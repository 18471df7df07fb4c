package gorouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	listview "github.com/goliatone/go-listview/components/listview"
	"github.com/goliatone/go-listview/components/listview/commands"
	"github.com/goliatone/go-listview/components/listview/httpapi"
	"github.com/goliatone/go-listview/components/listview/queries"
)

// ViewerResolver converts a router.Context into a listview.ViewerContext.
type ViewerResolver func(router.Context) listview.ViewerContext

// Config wires go-router with the list page controller and API.
type Config[T any] struct {
	Router         router.Router[T]
	Pages          *listview.PageController
	API            httpapi.Executor
	ViewerResolver ViewerResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for list endpoints.
type RouteConfig struct {
	HTML      string
	Index     string
	View      string
	Summary   string
	Search    string
	Filters   string
	Sort      string
	Page      string
	Selection string
	Session   string
}

type routeRegistrar interface {
	Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Delete(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
}

// requestContext is the subset of router.Context the JSON handlers use.
type requestContext interface {
	Context() context.Context
	Param(name string, defaultValue ...string) string
	Body() []byte
	JSON(code int, v any) error
}

// Register mounts list routes (HTML and JSON) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Pages == nil && cfg.API == nil {
		return errors.New("gorouter: page controller or API is required")
	}
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	resolver := cfg.ViewerResolver
	if resolver == nil {
		resolver = defaultViewerResolver
	}
	mount(cfg.Router.Group(base), &handlers{pages: cfg.Pages, api: cfg.API}, resolver, defaultRouteConfig(cfg.Routes))
	return nil
}

func mount(r routeRegistrar, h *handlers, resolver ViewerResolver, routes RouteConfig) {
	if h.pages != nil {
		r.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
			html, err := h.page(ctx.Context(), resolver(ctx), ctx.Param("list"))
			if err != nil {
				return respondError(ctx, err)
			}
			ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
			return ctx.Send(html)
		}))
	}
	if h.api == nil {
		return
	}
	wrap := func(fn func(requestContext, listview.ViewerContext) error) router.HandlerFunc {
		return router.WrapHandler(func(ctx router.Context) error {
			return fn(ctx, resolver(ctx))
		})
	}
	r.Get(routes.Index, wrap(h.lists))
	r.Get(routes.View, wrap(h.view))
	r.Get(routes.Summary, wrap(h.summary))
	r.Post(routes.Search, wrap(h.search))
	r.Post(routes.Filters, wrap(h.filter))
	r.Delete(routes.Filters, wrap(h.clearFilters))
	r.Post(routes.Sort, wrap(h.sort))
	r.Post(routes.Page, wrap(h.setPage))
	r.Post(routes.Selection, wrap(h.selection))
	r.Delete(routes.Selection, wrap(h.deleteSelected))
	r.Delete(routes.Session, wrap(h.close))
}

type handlers struct {
	pages *listview.PageController
	api   httpapi.Executor
}

func (h *handlers) page(ctx context.Context, viewer listview.ViewerContext, list string) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.pages.RenderTemplate(ctx, viewer, list, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *handlers) lists(ctx requestContext, viewer listview.ViewerContext) error {
	defs, err := h.api.Lists(ctx.Context(), viewer)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"lists": defs})
}

func (h *handlers) view(ctx requestContext, viewer listview.ViewerContext) error {
	view, err := h.api.View(ctx.Context(), queries.ViewInput{Viewer: viewer, List: ctx.Param("list")})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

func (h *handlers) summary(ctx requestContext, viewer listview.ViewerContext) error {
	summary, err := h.api.Summary(ctx.Context(), queries.ViewInput{Viewer: viewer, List: ctx.Param("list")})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (h *handlers) search(ctx requestContext, viewer listview.ViewerContext) error {
	var payload commands.SearchInput
	if ok, err := decodeBody(ctx, &payload); !ok {
		return err
	}
	payload.ListInput = listInput(ctx, viewer)
	return h.mutate(ctx, viewer, h.api.Search(ctx.Context(), payload))
}

func (h *handlers) filter(ctx requestContext, viewer listview.ViewerContext) error {
	var payload commands.FilterInput
	if ok, err := decodeBody(ctx, &payload); !ok {
		return err
	}
	payload.ListInput = listInput(ctx, viewer)
	return h.mutate(ctx, viewer, h.api.Filter(ctx.Context(), payload))
}

func (h *handlers) clearFilters(ctx requestContext, viewer listview.ViewerContext) error {
	payload := commands.FilterInput{ListInput: listInput(ctx, viewer), Clear: true}
	return h.mutate(ctx, viewer, h.api.Filter(ctx.Context(), payload))
}

func (h *handlers) sort(ctx requestContext, viewer listview.ViewerContext) error {
	var payload commands.SortInput
	if ok, err := decodeBody(ctx, &payload); !ok {
		return err
	}
	payload.ListInput = listInput(ctx, viewer)
	return h.mutate(ctx, viewer, h.api.Sort(ctx.Context(), payload))
}

func (h *handlers) setPage(ctx requestContext, viewer listview.ViewerContext) error {
	var payload commands.PageInput
	if ok, err := decodeBody(ctx, &payload); !ok {
		return err
	}
	payload.ListInput = listInput(ctx, viewer)
	return h.mutate(ctx, viewer, h.api.Page(ctx.Context(), payload))
}

func (h *handlers) selection(ctx requestContext, viewer listview.ViewerContext) error {
	var payload commands.SelectInput
	if ok, err := decodeBody(ctx, &payload); !ok {
		return err
	}
	payload.ListInput = listInput(ctx, viewer)
	return h.mutate(ctx, viewer, h.api.Select(ctx.Context(), payload))
}

func (h *handlers) deleteSelected(ctx requestContext, viewer listview.ViewerContext) error {
	result, err := h.api.DeleteSelected(ctx.Context(), commands.DeleteSelectedInput{ListInput: listInput(ctx, viewer)})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (h *handlers) close(ctx requestContext, viewer listview.ViewerContext) error {
	if err := h.api.Close(ctx.Context(), commands.CloseInput{ListInput: listInput(ctx, viewer)}); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "closed"})
}

func (h *handlers) mutate(ctx requestContext, viewer listview.ViewerContext, err error) error {
	if err != nil {
		return respondError(ctx, err)
	}
	return h.view(ctx, viewer)
}

func listInput(ctx requestContext, viewer listview.ViewerContext) commands.ListInput {
	return commands.ListInput{Viewer: viewer, List: ctx.Param("list")}
}

// decodeBody reports false when the response was already written.
func decodeBody(ctx requestContext, v any) (bool, error) {
	body := ctx.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return true, nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return true, nil
}

func defaultViewerResolver(ctx router.Context) listview.ViewerContext {
	var viewer listview.ViewerContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		viewer.UserID = v
	}
	if roles, ok := ctx.Locals("roles").([]string); ok {
		viewer.Roles = roles
	}
	viewer.Locale = inferLocale(ctx)
	return viewer
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	return httpapi.ParseAcceptLanguage(ctx.Header("Accept-Language"))
}

func respondError(ctx requestContext, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/lists/:list"
	}
	if routes.Index == "" {
		routes.Index = "/api/lists"
	}
	if routes.View == "" {
		routes.View = "/api/lists/:list"
	}
	if routes.Summary == "" {
		routes.Summary = "/api/lists/:list/summary"
	}
	if routes.Search == "" {
		routes.Search = "/api/lists/:list/search"
	}
	if routes.Filters == "" {
		routes.Filters = "/api/lists/:list/filters"
	}
	if routes.Sort == "" {
		routes.Sort = "/api/lists/:list/sort"
	}
	if routes.Page == "" {
		routes.Page = "/api/lists/:list/page"
	}
	if routes.Selection == "" {
		routes.Selection = "/api/lists/:list/selection"
	}
	if routes.Session == "" {
		routes.Session = "/api/lists/:list/session"
	}
	return routes
}
