package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// SelectInput toggles one record, or every visible record when All is set.
type SelectInput struct {
	ListInput
	ID      string `json:"id"`
	All     bool   `json:"all"`
	Checked bool   `json:"checked"`
}

type selectService interface {
	Select(ctx context.Context, viewer listview.ViewerContext, list, id string, checked bool) (listview.ViewPayload, error)
	SelectAllVisible(ctx context.Context, viewer listview.ViewerContext, list string, checked bool) (listview.ViewPayload, error)
}

// SelectCommand wraps the selection operations of the service.
type SelectCommand struct {
	service   selectService
	telemetry Telemetry
}

// NewSelectCommand creates the command.
func NewSelectCommand(service selectService, telemetry Telemetry) *SelectCommand {
	return &SelectCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectInput] = (*SelectCommand)(nil)

// Execute updates the selection.
func (c *SelectCommand) Execute(ctx context.Context, msg SelectInput) error {
	if c.service == nil {
		return errors.New("select command requires service")
	}
	if err := msg.validate("select"); err != nil {
		return err
	}
	var (
		view listview.ViewPayload
		err  error
	)
	if msg.All {
		view, err = c.service.SelectAllVisible(ctx, msg.Viewer, msg.List, msg.Checked)
	} else {
		if msg.ID == "" {
			return errors.New("select command requires record id")
		}
		view, err = c.service.Select(ctx, msg.Viewer, msg.List, msg.ID, msg.Checked)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "listview.command.select", msg.payload(map[string]any{
		"all":      msg.All,
		"checked":  msg.Checked,
		"selected": len(view.Selected),
	}))
	return nil
}
