package listview

import (
	"context"
	"embed"
	"fmt"
	"io"

	template "github.com/goliatone/go-template"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Renderer describes the template renderer contract needed by the page controller.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// NewTemplateRenderer creates a go-template renderer backed by the embedded templates.
func NewTemplateRenderer() (Renderer, error) {
	return template.NewRenderer(
		template.WithFS(embeddedTemplates),
		template.WithBaseDir("templates"),
		template.WithExtension(".html"),
	)
}

type viewResolver interface {
	View(ctx context.Context, viewer ViewerContext, list string) (ViewPayload, error)
}

// PageControllerOptions configures a PageController.
type PageControllerOptions struct {
	Service  viewResolver
	Renderer Renderer
	Template string
	BasePath string
}

// PageController renders list pages for HTTP handlers.
type PageController struct {
	service  viewResolver
	renderer Renderer
	template string
	basePath string
}

// NewPageController wires the service and renderer into a controller.
func NewPageController(opts PageControllerOptions) *PageController {
	if opts.Template == "" {
		opts.Template = "list"
	}
	if opts.BasePath == "" {
		opts.BasePath = "/admin/lists"
	}
	return &PageController{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: opts.Template,
		basePath: opts.BasePath,
	}
}

// Payload resolves the list view for viewer.
func (c *PageController) Payload(ctx context.Context, viewer ViewerContext, list string) (ViewPayload, error) {
	if c.service == nil {
		return ViewPayload{}, fmt.Errorf("listview: page controller requires a service")
	}
	return c.service.View(ctx, viewer, list)
}

// RenderTemplate writes the list page HTML to out.
func (c *PageController) RenderTemplate(ctx context.Context, viewer ViewerContext, list string, out io.Writer) error {
	if c.renderer == nil {
		return fmt.Errorf("listview: page controller requires a renderer")
	}
	view, err := c.Payload(ctx, viewer, list)
	if err != nil {
		return err
	}
	data := map[string]any{
		"view":      view,
		"viewer":    viewer,
		"base_path": c.basePath,
	}
	if _, err := c.renderer.Render(c.template, data, out); err != nil {
		return fmt.Errorf("listview: render %s: %w", list, err)
	}
	return nil
}
