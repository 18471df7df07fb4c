package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// FilterInput sets one filter, or clears every filter when Clear is set.
// An empty Value clears only Key.
type FilterInput struct {
	ListInput
	Key   string `json:"key"`
	Value string `json:"value"`
	Clear bool   `json:"clear"`
}

type filterService interface {
	SetFilter(ctx context.Context, viewer listview.ViewerContext, list, key, value string) (listview.ViewPayload, error)
	ClearFilters(ctx context.Context, viewer listview.ViewerContext, list string) (listview.ViewPayload, error)
}

// FilterCommand wraps Service.SetFilter and Service.ClearFilters.
type FilterCommand struct {
	service   filterService
	telemetry Telemetry
}

// NewFilterCommand creates the command.
func NewFilterCommand(service filterService, telemetry Telemetry) *FilterCommand {
	return &FilterCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[FilterInput] = (*FilterCommand)(nil)

// Execute applies the filter change.
func (c *FilterCommand) Execute(ctx context.Context, msg FilterInput) error {
	if c.service == nil {
		return errors.New("filter command requires service")
	}
	if err := msg.validate("filter"); err != nil {
		return err
	}
	if msg.Clear {
		if _, err := c.service.ClearFilters(ctx, msg.Viewer, msg.List); err != nil {
			return err
		}
		c.telemetry.Record(ctx, "listview.command.filter", msg.payload(map[string]any{"cleared": true}))
		return nil
	}
	if msg.Key == "" {
		return errors.New("filter command requires filter key")
	}
	if _, err := c.service.SetFilter(ctx, msg.Viewer, msg.List, msg.Key, msg.Value); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "listview.command.filter", msg.payload(map[string]any{
		"key":   msg.Key,
		"value": msg.Value,
	}))
	return nil
}
