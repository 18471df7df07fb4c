package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// SortInput is a column header click.
type SortInput struct {
	ListInput
	Key string `json:"key"`
}

type sortService interface {
	RequestSort(ctx context.Context, viewer listview.ViewerContext, list, key string) (listview.ViewPayload, error)
}

// SortCommand wraps Service.RequestSort.
type SortCommand struct {
	service   sortService
	telemetry Telemetry
}

// NewSortCommand creates the command.
func NewSortCommand(service sortService, telemetry Telemetry) *SortCommand {
	return &SortCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SortInput] = (*SortCommand)(nil)

// Execute toggles or switches the sort key.
func (c *SortCommand) Execute(ctx context.Context, msg SortInput) error {
	if c.service == nil {
		return errors.New("sort command requires service")
	}
	if err := msg.validate("sort"); err != nil {
		return err
	}
	if msg.Key == "" {
		return errors.New("sort command requires sort key")
	}
	view, err := c.service.RequestSort(ctx, msg.Viewer, msg.List, msg.Key)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "listview.command.sort", msg.payload(map[string]any{
		"sort": view.Sort.String(),
	}))
	return nil
}
