package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// SearchInput carries a new free text query.
type SearchInput struct {
	ListInput
	Term string `json:"term"`
}

type searchService interface {
	SetSearchTerm(ctx context.Context, viewer listview.ViewerContext, list, term string) (listview.ViewPayload, error)
}

// SearchCommand wraps Service.SetSearchTerm.
type SearchCommand struct {
	service   searchService
	telemetry Telemetry
}

// NewSearchCommand creates the command.
func NewSearchCommand(service searchService, telemetry Telemetry) *SearchCommand {
	return &SearchCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SearchInput] = (*SearchCommand)(nil)

// Execute updates the search term; the list returns to its first page.
func (c *SearchCommand) Execute(ctx context.Context, msg SearchInput) error {
	if c.service == nil {
		return errors.New("search command requires service")
	}
	if err := msg.validate("search"); err != nil {
		return err
	}
	view, err := c.service.SetSearchTerm(ctx, msg.Viewer, msg.List, msg.Term)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "listview.command.search", msg.payload(map[string]any{
		"term":    msg.Term,
		"matches": view.Total,
	}))
	return nil
}
