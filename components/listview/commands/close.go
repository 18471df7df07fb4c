package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// CloseInput ends a list session.
type CloseInput struct {
	ListInput
}

type closeService interface {
	Close(ctx context.Context, viewer listview.ViewerContext, list string) error
}

// CloseCommand wraps Service.Close.
type CloseCommand struct {
	service   closeService
	telemetry Telemetry
}

// NewCloseCommand creates the command.
func NewCloseCommand(service closeService, telemetry Telemetry) *CloseCommand {
	return &CloseCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CloseInput] = (*CloseCommand)(nil)

// Execute discards the viewer's list state.
func (c *CloseCommand) Execute(ctx context.Context, msg CloseInput) error {
	if c.service == nil {
		return errors.New("close command requires service")
	}
	if err := msg.validate("close"); err != nil {
		return err
	}
	if err := c.service.Close(ctx, msg.Viewer, msg.List); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "listview.command.close", msg.payload(nil))
	return nil
}
