package listview_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-listview/pkg/listview"
)

func TestNewServiceStartsEmpty(t *testing.T) {
	svc := listview.NewService(listview.Options{})
	if got := len(svc.Lists()); got != 0 {
		t.Fatalf("expected no lists, got %d", got)
	}
	if _, err := svc.View(context.Background(), listview.ViewerContext{UserID: "u1"}, "customers"); err == nil {
		t.Fatalf("expected unknown list error")
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.yaml")
	if err := os.WriteFile(path, []byte("lists:\n  - code: orders\n    resource: orders\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	registry, err := listview.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if _, ok := registry.Definition("orders"); !ok {
		t.Fatalf("expected orders definition")
	}
}
