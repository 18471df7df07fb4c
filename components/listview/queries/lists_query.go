package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

type listsService interface {
	Lists() []listview.ListDefinition
}

// ListsQuery returns the definitions of every registered list.
type ListsQuery struct {
	service listsService
}

// NewListsQuery builds the query.
func NewListsQuery(service listsService) *ListsQuery {
	return &ListsQuery{service: service}
}

var _ gocommand.Querier[listview.ViewerContext, []listview.ListDefinition] = (*ListsQuery)(nil)

// Query lists the registered definitions. The viewer is accepted for parity
// with the other queries.
func (q *ListsQuery) Query(_ context.Context, _ listview.ViewerContext) ([]listview.ListDefinition, error) {
	return q.service.Lists(), nil
}
