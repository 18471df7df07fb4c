package httpapi

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
	"github.com/goliatone/go-listview/components/listview/commands"
	"github.com/goliatone/go-listview/components/listview/queries"
)

// Executor is the transport facing surface shared by the net/http handlers and
// the go-router adapter.
type Executor interface {
	View(ctx context.Context, input queries.ViewInput) (listview.ViewPayload, error)
	Summary(ctx context.Context, input queries.ViewInput) (listview.SummaryPayload, error)
	Lists(ctx context.Context, viewer listview.ViewerContext) ([]listview.ListDefinition, error)
	Search(ctx context.Context, input commands.SearchInput) error
	Filter(ctx context.Context, input commands.FilterInput) error
	Sort(ctx context.Context, input commands.SortInput) error
	Page(ctx context.Context, input commands.PageInput) error
	Select(ctx context.Context, input commands.SelectInput) error
	DeleteSelected(ctx context.Context, input commands.DeleteSelectedInput) (commands.DeleteResult, error)
	Close(ctx context.Context, input commands.CloseInput) error
}

// CommandExecutor adapts go-command commanders and queriers into an Executor.
type CommandExecutor struct {
	ViewQuery    gocommand.Querier[queries.ViewInput, listview.ViewPayload]
	SummaryQuery gocommand.Querier[queries.ViewInput, listview.SummaryPayload]
	ListsQuery   gocommand.Querier[listview.ViewerContext, []listview.ListDefinition]

	SearchCommand gocommand.Commander[commands.SearchInput]
	FilterCommand gocommand.Commander[commands.FilterInput]
	SortCommand   gocommand.Commander[commands.SortInput]
	PageCommand   gocommand.Commander[commands.PageInput]
	SelectCommand gocommand.Commander[commands.SelectInput]
	DeleteCommand gocommand.Commander[commands.DeleteSelectedInput]
	CloseCommand  gocommand.Commander[commands.CloseInput]
}

var _ Executor = (*CommandExecutor)(nil)

// ErrNotConfigured is returned when an executor operation has no handler.
var ErrNotConfigured = errors.New("httpapi: operation not configured")

// NewServiceExecutor wires every command and query to service.
func NewServiceExecutor(service *listview.Service, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		ViewQuery:     queries.NewViewQuery(service),
		SummaryQuery:  queries.NewSummaryQuery(service),
		ListsQuery:    queries.NewListsQuery(service),
		SearchCommand: commands.NewSearchCommand(service, telemetry),
		FilterCommand: commands.NewFilterCommand(service, telemetry),
		SortCommand:   commands.NewSortCommand(service, telemetry),
		PageCommand:   commands.NewPageCommand(service, telemetry),
		SelectCommand: commands.NewSelectCommand(service, telemetry),
		DeleteCommand: commands.NewDeleteSelectedCommand(service, telemetry),
		CloseCommand:  commands.NewCloseCommand(service, telemetry),
	}
}

func (e *CommandExecutor) View(ctx context.Context, input queries.ViewInput) (listview.ViewPayload, error) {
	if e.ViewQuery == nil {
		return listview.ViewPayload{}, ErrNotConfigured
	}
	return e.ViewQuery.Query(ctx, input)
}

func (e *CommandExecutor) Summary(ctx context.Context, input queries.ViewInput) (listview.SummaryPayload, error) {
	if e.SummaryQuery == nil {
		return listview.SummaryPayload{}, ErrNotConfigured
	}
	return e.SummaryQuery.Query(ctx, input)
}

func (e *CommandExecutor) Lists(ctx context.Context, viewer listview.ViewerContext) ([]listview.ListDefinition, error) {
	if e.ListsQuery == nil {
		return nil, ErrNotConfigured
	}
	return e.ListsQuery.Query(ctx, viewer)
}

func (e *CommandExecutor) Search(ctx context.Context, input commands.SearchInput) error {
	return execute(ctx, e.SearchCommand, input)
}

func (e *CommandExecutor) Filter(ctx context.Context, input commands.FilterInput) error {
	return execute(ctx, e.FilterCommand, input)
}

func (e *CommandExecutor) Sort(ctx context.Context, input commands.SortInput) error {
	return execute(ctx, e.SortCommand, input)
}

func (e *CommandExecutor) Page(ctx context.Context, input commands.PageInput) error {
	return execute(ctx, e.PageCommand, input)
}

func (e *CommandExecutor) Select(ctx context.Context, input commands.SelectInput) error {
	return execute(ctx, e.SelectCommand, input)
}

// DeleteSelected returns the count and view reported by the delete command.
func (e *CommandExecutor) DeleteSelected(ctx context.Context, input commands.DeleteSelectedInput) (commands.DeleteResult, error) {
	if input.Result == nil {
		input.Result = &commands.DeleteResult{}
	}
	if err := execute(ctx, e.DeleteCommand, input); err != nil {
		return commands.DeleteResult{}, err
	}
	return *input.Result, nil
}

func (e *CommandExecutor) Close(ctx context.Context, input commands.CloseInput) error {
	return execute(ctx, e.CloseCommand, input)
}

func execute[T any](ctx context.Context, cmd gocommand.Commander[T], msg T) error {
	if cmd == nil {
		return ErrNotConfigured
	}
	return cmd.Execute(ctx, msg)
}
