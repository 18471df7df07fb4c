package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	listview "github.com/goliatone/go-listview/components/listview"
)

type summaryService interface {
	Summary(ctx context.Context, viewer listview.ViewerContext, list string) (listview.SummaryPayload, error)
}

// SummaryQuery computes list statistics.
type SummaryQuery struct {
	service summaryService
}

// NewSummaryQuery builds the query.
func NewSummaryQuery(service summaryService) *SummaryQuery {
	return &SummaryQuery{service: service}
}

var _ gocommand.Querier[ViewInput, listview.SummaryPayload] = (*SummaryQuery)(nil)

// Query returns the summary for the list.
func (q *SummaryQuery) Query(ctx context.Context, input ViewInput) (listview.SummaryPayload, error) {
	return q.service.Summary(ctx, input.Viewer, input.List)
}
