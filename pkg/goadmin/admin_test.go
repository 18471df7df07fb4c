package goadmin_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-listview/pkg/catalog"
	"github.com/goliatone/go-listview/pkg/goadmin"
	listviewpkg "github.com/goliatone/go-listview/pkg/listview"
)

type stubMenuBuilder struct {
	calls int
	items []goadmin.MenuItem
}

func (s *stubMenuBuilder) EnsureMenuItem(_ context.Context, _ string, item goadmin.MenuItem) error {
	s.calls++
	s.items = append(s.items, item)
	return nil
}

func TestAdminBootstrapSeedsMenuPerList(t *testing.T) {
	builder := &stubMenuBuilder{}
	service := listviewpkg.NewService(listviewpkg.Options{})
	if err := catalog.Install(service, catalog.DefaultSources()); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
	admin, err := goadmin.New(goadmin.Config{
		EnableLists: true,
		Service:     service,
		MenuBuilder: builder,
		Icons:       map[string]string{"users": "user"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if builder.calls != len(service.Lists()) {
		t.Fatalf("expected %d calls, got %d", len(service.Lists()), builder.calls)
	}
	first := builder.items[0]
	if first.Route != "admin.lists.customers" || first.Path != "/admin/lists/customers" || first.Position != 100 {
		t.Fatalf("unexpected first menu item %#v", first)
	}
	for _, item := range builder.items {
		if item.Route == "admin.lists.users" && item.Icon != "user" {
			t.Fatalf("expected icon override, got %q", item.Icon)
		}
	}
	if admin.Lists() == nil {
		t.Fatalf("expected list service")
	}
}

func TestAdminDisabledSkipsBootstrap(t *testing.T) {
	builder := &stubMenuBuilder{}
	admin, err := goadmin.New(goadmin.Config{
		EnableLists: false,
		MenuBuilder: builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if builder.calls != 0 {
		t.Fatalf("expected 0 calls, got %d", builder.calls)
	}
	if admin.Lists() != nil {
		t.Fatalf("expected nil service when disabled")
	}
}

func TestAdminRequiresServiceWhenEnabled(t *testing.T) {
	if _, err := goadmin.New(goadmin.Config{EnableLists: true}); err == nil {
		t.Fatalf("expected error without service")
	}
}
