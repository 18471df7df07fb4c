package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// DeleteResult is the outcome of a delete: the number of ids removed and the
// view after pruning.
type DeleteResult struct {
	Deleted int                  `json:"deleted"`
	View    listview.ViewPayload `json:"view"`
}

// DeleteSelectedInput removes every selected record of a list. Result, when
// set, receives the outcome.
type DeleteSelectedInput struct {
	ListInput
	Result *DeleteResult `json:"-"`
}

type deleteService interface {
	DeleteSelected(ctx context.Context, viewer listview.ViewerContext, list string) (int, listview.ViewPayload, error)
}

// DeleteSelectedCommand wraps Service.DeleteSelected.
type DeleteSelectedCommand struct {
	service   deleteService
	telemetry Telemetry
}

// NewDeleteSelectedCommand creates the command.
func NewDeleteSelectedCommand(service deleteService, telemetry Telemetry) *DeleteSelectedCommand {
	return &DeleteSelectedCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteSelectedInput] = (*DeleteSelectedCommand)(nil)

// Execute deletes the selection from the record source.
func (c *DeleteSelectedCommand) Execute(ctx context.Context, msg DeleteSelectedInput) error {
	if c.service == nil {
		return errors.New("delete command requires service")
	}
	if err := msg.validate("delete"); err != nil {
		return err
	}
	count, view, err := c.service.DeleteSelected(ctx, msg.Viewer, msg.List)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = DeleteResult{Deleted: count, View: view}
	}
	c.telemetry.Record(ctx, "listview.command.delete", msg.payload(map[string]any{"count": count}))
	return nil
}
