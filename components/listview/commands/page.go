package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// PageInput requests a page; out of range pages are clamped by the service.
type PageInput struct {
	ListInput
	Page int `json:"page"`
}

type pageService interface {
	SetPage(ctx context.Context, viewer listview.ViewerContext, list string, page int) (listview.ViewPayload, error)
}

// PageCommand wraps Service.SetPage.
type PageCommand struct {
	service   pageService
	telemetry Telemetry
}

// NewPageCommand creates the command.
func NewPageCommand(service pageService, telemetry Telemetry) *PageCommand {
	return &PageCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[PageInput] = (*PageCommand)(nil)

// Execute moves the list to the requested page.
func (c *PageCommand) Execute(ctx context.Context, msg PageInput) error {
	if c.service == nil {
		return errors.New("page command requires service")
	}
	if err := msg.validate("page"); err != nil {
		return err
	}
	view, err := c.service.SetPage(ctx, msg.Viewer, msg.List, msg.Page)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "listview.command.page", msg.payload(map[string]any{
		"requested": msg.Page,
		"page":      view.Page,
	}))
	return nil
}
