package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/goliatone/go-listview/components/listview"
)

func TestFixturesAreDeterministic(t *testing.T) {
	first := Customers()
	second := Customers()
	require.Len(t, first, 25)
	assert.Equal(t, first, second)

	id, err := uuid.Parse(first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.NotEqual(t, first[0].ID, first[1].ID)
}

func TestRoleMembersMatchUsers(t *testing.T) {
	total := 0
	for _, r := range Roles() {
		total += r.Members
	}
	assert.Equal(t, len(Users()), total)
}

func TestManifestBindsEveryList(t *testing.T) {
	doc, err := Manifest()
	require.NoError(t, err)
	require.Len(t, doc.Lists, 7)

	svc := listview.NewService(listview.Options{})
	require.NoError(t, InstallManifest(svc, doc, DefaultSources()))
	assert.Len(t, svc.Lists(), 7)
}

func TestInstallSkipsListsWithoutSource(t *testing.T) {
	svc := listview.NewService(listview.Options{})
	sources := Sources{Customers: NewMockSource(func(r Customer) string { return r.ID }, Customers())}
	require.NoError(t, Install(svc, sources))

	lists := svc.Lists()
	require.Len(t, lists, 1)
	assert.Equal(t, "customers", lists[0].Code)
}

func TestBindRejectsUnknownResource(t *testing.T) {
	_, err := Bind(listview.ListDefinition{Code: "widgets", Resource: "widgets"}, DefaultSources())
	require.Error(t, err)
}

func newCatalogService(t *testing.T) *listview.Service {
	t.Helper()
	svc := listview.NewService(listview.Options{})
	require.NoError(t, Install(svc, DefaultSources()))
	return svc
}

func TestCustomerSearchPaginates(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)
	viewer := listview.ViewerContext{UserID: "admin"}

	view, err := svc.SetSearchTerm(ctx, viewer, "customers", "a")
	require.NoError(t, err)
	assert.Equal(t, 12, view.Total)
	assert.Equal(t, 2, view.TotalPages)
	assert.Len(t, view.Rows, 10)

	view, err = svc.SetPage(ctx, viewer, "customers", 2)
	require.NoError(t, err)
	assert.Len(t, view.Rows, 2)
}

func TestCustomerSortByTotalSpent(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)
	viewer := listview.ViewerContext{UserID: "admin"}

	_, err := svc.RequestSort(ctx, viewer, "customers", "total_spent")
	require.NoError(t, err)
	view, err := svc.RequestSort(ctx, viewer, "customers", "total_spent")
	require.NoError(t, err)
	require.Equal(t, listview.SortDescending, view.Sort.Direction)
	assert.Equal(t, 1350.0, view.Rows[0].Values["total_spent"])
	assert.Equal(t, "Kim Lee", view.Rows[0].Values["name"])
	assert.Equal(t, "Yves Bonnet", view.Rows[1].Values["name"])

	view, err = svc.RequestSort(ctx, viewer, "customers", "total_spent")
	require.NoError(t, err)
	last, err := svc.SetPage(ctx, viewer, "customers", 3)
	require.NoError(t, err)
	require.Equal(t, listview.SortAscending, view.Sort.Direction)
	n := len(last.Rows)
	assert.Equal(t, "Kim Lee", last.Rows[n-2].Values["name"])
	assert.Equal(t, "Yves Bonnet", last.Rows[n-1].Values["name"])
}

func TestCustomerSearchFoldsAccents(t *testing.T) {
	svc := newCatalogService(t)
	view, err := svc.SetSearchTerm(context.Background(), listview.ViewerContext{UserID: "admin"}, "customers", "perez")
	require.NoError(t, err)
	require.Equal(t, 1, view.Total)
	assert.Equal(t, "Laura Pérez", view.Rows[0].Values["name"])
}

func TestDeleteSelectedCustomers(t *testing.T) {
	ctx := context.Background()
	sources := DefaultSources()
	svc := listview.NewService(listview.Options{})
	require.NoError(t, Install(svc, sources))
	viewer := listview.ViewerContext{UserID: "admin"}

	_, err := svc.SelectAllVisible(ctx, viewer, "customers", true)
	require.NoError(t, err)
	count, view, err := svc.DeleteSelected(ctx, viewer, "customers")
	require.NoError(t, err)
	assert.Equal(t, 10, count)
	assert.Equal(t, 15, view.Total)
	assert.Equal(t, 15, sources.Customers.(*MockSource[Customer]).Len())
}

func TestInvoiceSummary(t *testing.T) {
	svc := newCatalogService(t)
	summary, err := svc.Summary(context.Background(), listview.ViewerContext{UserID: "admin"}, "invoices")
	require.NoError(t, err)
	assert.Equal(t, 30, summary.Summary.Count)
	open, ok := summary.Summary.Bucket("open")
	require.True(t, ok)
	assert.Equal(t, 10, open.Count)
	assert.Equal(t, 33.3, open.Percent)
}

func TestMockSourceCopiesRecords(t *testing.T) {
	src := NewMockSource(func(r Role) string { return r.ID }, Roles())
	records, err := src.List(context.Background())
	require.NoError(t, err)
	records[0].Name = "mutated"

	again, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", again[0].Name)

	require.NoError(t, src.Delete(context.Background(), []string{again[0].ID}))
	assert.Equal(t, 3, src.Len())

	src.Replace(nil)
	assert.Zero(t, src.Len())
}

func TestHTTPSourceDecodesArrayAndEnvelope(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/products":
			_ = json.NewEncoder(w).Encode(Products()[:2])
		case "/v1/roles":
			_ = json.NewEncoder(w).Encode(map[string]any{"data": Roles()})
		default:
			http.Error(w, "missing", http.StatusNotFound)
		}
	}))
	defer server.Close()

	products, err := NewHTTPSource[Product](HTTPConfig{BaseURL: server.URL + "/v1/", Path: "products", APIKey: "secret"})
	require.NoError(t, err)
	got, err := products.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Products()[:2], got)
	assert.Equal(t, "Bearer secret", auth)

	roles, err := NewHTTPSource[Role](HTTPConfig{BaseURL: server.URL + "/v1", Path: "/roles"})
	require.NoError(t, err)
	gotRoles, err := roles.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, gotRoles, 4)

	missing, err := NewHTTPSource[Role](HTTPConfig{BaseURL: server.URL, Path: "/nope"})
	require.NoError(t, err)
	_, err = missing.List(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "404"))

	_, err = NewHTTPSource[Role](HTTPConfig{})
	require.Error(t, err)
}
