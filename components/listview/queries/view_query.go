package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

// ViewInput identifies a list session for a viewer.
type ViewInput struct {
	Viewer listview.ViewerContext
	List   string
}

type viewService interface {
	View(ctx context.Context, viewer listview.ViewerContext, list string) (listview.ViewPayload, error)
}

// ViewQuery resolves the current page of a list.
type ViewQuery struct {
	service viewService
}

// NewViewQuery builds the query.
func NewViewQuery(service viewService) *ViewQuery {
	return &ViewQuery{service: service}
}

var _ gocommand.Querier[ViewInput, listview.ViewPayload] = (*ViewQuery)(nil)

// Query returns the list view without changing state.
func (q *ViewQuery) Query(ctx context.Context, input ViewInput) (listview.ViewPayload, error) {
	return q.service.View(ctx, input.Viewer, input.List)
}
