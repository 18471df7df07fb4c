package commands

import (
	"context"
	"errors"
	"testing"

	listview "github.com/goliatone/go-listview/components/listview"
)

type stubService struct {
	searchCalls int
	filterCalls int
	clearCalls  int
	sortCalls   int
	pageCalls   int
	selectCalls int
	selectAll   int
	deleteCalls int
	closeCalls  int
	lastKey     string
	lastPage    int
	err         error
}

func (s *stubService) view() listview.ViewPayload {
	return listview.ViewPayload{Page: 1, Selected: []string{"r1"}}
}

func (s *stubService) SetSearchTerm(context.Context, listview.ViewerContext, string, string) (listview.ViewPayload, error) {
	s.searchCalls++
	return s.view(), s.err
}

func (s *stubService) SetFilter(_ context.Context, _ listview.ViewerContext, _, key, _ string) (listview.ViewPayload, error) {
	s.filterCalls++
	s.lastKey = key
	return s.view(), s.err
}

func (s *stubService) ClearFilters(context.Context, listview.ViewerContext, string) (listview.ViewPayload, error) {
	s.clearCalls++
	return s.view(), s.err
}

func (s *stubService) RequestSort(_ context.Context, _ listview.ViewerContext, _, key string) (listview.ViewPayload, error) {
	s.sortCalls++
	s.lastKey = key
	return s.view(), s.err
}

func (s *stubService) SetPage(_ context.Context, _ listview.ViewerContext, _ string, page int) (listview.ViewPayload, error) {
	s.pageCalls++
	s.lastPage = page
	return s.view(), s.err
}

func (s *stubService) Select(context.Context, listview.ViewerContext, string, string, bool) (listview.ViewPayload, error) {
	s.selectCalls++
	return s.view(), s.err
}

func (s *stubService) SelectAllVisible(context.Context, listview.ViewerContext, string, bool) (listview.ViewPayload, error) {
	s.selectAll++
	return s.view(), s.err
}

func (s *stubService) DeleteSelected(context.Context, listview.ViewerContext, string) (int, listview.ViewPayload, error) {
	s.deleteCalls++
	return 1, s.view(), s.err
}

func (s *stubService) Close(context.Context, listview.ViewerContext, string) error {
	s.closeCalls++
	return s.err
}

type stubTelemetry struct {
	calls  int
	events []string
}

func (s *stubTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.calls++
	s.events = append(s.events, event)
}

func listInput() ListInput {
	return ListInput{Viewer: listview.ViewerContext{UserID: "u1"}, List: "customers"}
}

func TestSearchCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewSearchCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), SearchInput{ListInput: listInput(), Term: "ann"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.searchCalls != 1 {
		t.Fatalf("expected search call")
	}
	if telemetry.calls != 1 || telemetry.events[0] != "listview.command.search" {
		t.Fatalf("expected search telemetry, got %v", telemetry.events)
	}
}

func TestFilterCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewFilterCommand(service, nil)
	if err := cmd.Execute(context.Background(), FilterInput{ListInput: listInput(), Key: "status", Value: "active"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.filterCalls != 1 || service.lastKey != "status" {
		t.Fatalf("expected filter call with key, got %d %q", service.filterCalls, service.lastKey)
	}
	if err := cmd.Execute(context.Background(), FilterInput{ListInput: listInput(), Clear: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.clearCalls != 1 {
		t.Fatalf("expected clear call")
	}
	if err := cmd.Execute(context.Background(), FilterInput{ListInput: listInput()}); err == nil {
		t.Fatalf("expected error without filter key")
	}
}

func TestSortCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSortCommand(service, nil)
	if err := cmd.Execute(context.Background(), SortInput{ListInput: listInput(), Key: "name"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.sortCalls != 1 || service.lastKey != "name" {
		t.Fatalf("expected sort call")
	}
	if err := cmd.Execute(context.Background(), SortInput{ListInput: listInput()}); err == nil {
		t.Fatalf("expected error without sort key")
	}
}

func TestPageCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewPageCommand(service, nil)
	if err := cmd.Execute(context.Background(), PageInput{ListInput: listInput(), Page: 3}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.lastPage != 3 {
		t.Fatalf("expected page propagation, got %d", service.lastPage)
	}
}

func TestSelectCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSelectCommand(service, nil)
	if err := cmd.Execute(context.Background(), SelectInput{ListInput: listInput(), ID: "r1", Checked: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if err := cmd.Execute(context.Background(), SelectInput{ListInput: listInput(), All: true, Checked: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.selectCalls != 1 || service.selectAll != 1 {
		t.Fatalf("expected one single and one select-all call, got %d/%d", service.selectCalls, service.selectAll)
	}
	if err := cmd.Execute(context.Background(), SelectInput{ListInput: listInput()}); err == nil {
		t.Fatalf("expected error without record id")
	}
}

func TestDeleteSelectedCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewDeleteSelectedCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), DeleteSelectedInput{ListInput: listInput()}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.deleteCalls != 1 || telemetry.calls != 1 {
		t.Fatalf("expected delete call and telemetry")
	}
}

func TestDeleteSelectedCommandReportsResult(t *testing.T) {
	service := &stubService{}
	cmd := NewDeleteSelectedCommand(service, nil)
	result := &DeleteResult{}
	if err := cmd.Execute(context.Background(), DeleteSelectedInput{ListInput: listInput(), Result: result}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Deleted != 1 {
		t.Fatalf("expected deleted count from service, got %d", result.Deleted)
	}
	if result.View.Page != 1 || len(result.View.Selected) != 1 {
		t.Fatalf("expected refreshed view, got %#v", result.View)
	}
}

func TestCloseCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewCloseCommand(service, nil)
	if err := cmd.Execute(context.Background(), CloseInput{ListInput: listInput()}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.closeCalls != 1 {
		t.Fatalf("expected close call")
	}
}

func TestCommandsRequireListAndService(t *testing.T) {
	if err := NewSearchCommand(nil, nil).Execute(context.Background(), SearchInput{ListInput: listInput()}); err == nil {
		t.Fatalf("expected error without service")
	}
	if err := NewPageCommand(&stubService{}, nil).Execute(context.Background(), PageInput{Page: 2}); err == nil {
		t.Fatalf("expected error without list code")
	}
}

func TestCommandsPropagateServiceErrors(t *testing.T) {
	service := &stubService{err: listview.ErrUnknownFilter}
	telemetry := &stubTelemetry{}
	err := NewFilterCommand(service, telemetry).Execute(context.Background(), FilterInput{ListInput: listInput(), Key: "region", Value: "emea"})
	if !errors.Is(err, listview.ErrUnknownFilter) {
		t.Fatalf("expected ErrUnknownFilter, got %v", err)
	}
	if telemetry.calls != 0 {
		t.Fatalf("expected no telemetry on failure")
	}
}

type account struct {
	ID   string
	Name string
}

func TestCommandsDriveService(t *testing.T) {
	schema := listview.MustSchema(func(a account) string { return a.ID },
		listview.Field[account]{Name: "name", Get: func(a account) listview.Value { return listview.StringValue(a.Name) }},
	)
	records := []account{{ID: "1", Name: "Ada"}, {ID: "2", Name: "Grace"}, {ID: "3", Name: "Linus"}}
	binding, err := listview.Bind(listview.ListDefinition{
		Code:         "accounts",
		Resource:     "accounts",
		PageSize:     2,
		SearchFields: []string{"name"},
	}, schema, listview.StaticSource(records))
	if err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	service := listview.NewService(listview.Options{})
	if err := service.Register(binding); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	ctx := context.Background()
	in := ListInput{Viewer: listview.ViewerContext{UserID: "u1"}, List: "accounts"}
	if err := NewPageCommand(service, nil).Execute(ctx, PageInput{ListInput: in, Page: 2}); err != nil {
		t.Fatalf("page returned error: %v", err)
	}
	if err := NewSearchCommand(service, nil).Execute(ctx, SearchInput{ListInput: in, Term: "a"}); err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	view, err := service.View(ctx, in.Viewer, in.List)
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if view.Page != 1 || view.Total != 2 {
		t.Fatalf("expected page 1 with 2 matches, got page %d total %d", view.Page, view.Total)
	}
}
