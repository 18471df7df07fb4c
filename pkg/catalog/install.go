package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	listview "github.com/goliatone/go-listview/components/listview"
)

//go:embed lists.yaml
var manifestYAML []byte

// Resource names understood by Bind.
const (
	ResourceCustomers  = "customers"
	ResourceOrders     = "orders"
	ResourceInvoices   = "invoices"
	ResourceProducts   = "products"
	ResourceStockItems = "stock_items"
	ResourceUsers      = "users"
	ResourceRoles      = "roles"
)

// Sources supplies records per resource. Lists whose source is nil are skipped
// by Install.
type Sources struct {
	Customers  listview.Source[Customer]
	Orders     listview.Source[Order]
	Invoices   listview.Source[Invoice]
	Products   listview.Source[Product]
	StockItems listview.Source[StockItem]
	Users      listview.Source[User]
	Roles      listview.Source[Role]
}

// DefaultSources serves the fixtures through deletable mock sources.
func DefaultSources() Sources {
	return Sources{
		Customers:  NewMockSource(func(r Customer) string { return r.ID }, Customers()),
		Orders:     NewMockSource(func(r Order) string { return r.ID }, Orders()),
		Invoices:   NewMockSource(func(r Invoice) string { return r.ID }, Invoices()),
		Products:   NewMockSource(func(r Product) string { return r.ID }, Products()),
		StockItems: NewMockSource(func(r StockItem) string { return r.ID }, StockItems()),
		Users:      NewMockSource(func(r User) string { return r.ID }, Users()),
		Roles:      NewMockSource(func(r Role) string { return r.ID }, Roles()),
	}
}

// Manifest decodes the embedded list manifest.
func Manifest() (*listview.ListManifestDocument, error) {
	doc, err := listview.DecodeManifest(bytes.NewReader(manifestYAML))
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded manifest: %w", err)
	}
	doc.Source = "catalog/lists.yaml"
	return doc, nil
}

// Install binds every list of the embedded manifest into svc.
func Install(svc *listview.Service, sources Sources) error {
	doc, err := Manifest()
	if err != nil {
		return err
	}
	return InstallManifest(svc, doc, sources)
}

// InstallManifest binds every list of doc whose resource has a source.
func InstallManifest(svc *listview.Service, doc *listview.ListManifestDocument, sources Sources) error {
	if svc == nil {
		return errors.New("catalog: service is required")
	}
	if doc == nil {
		return errors.New("catalog: manifest is required")
	}
	for _, def := range doc.Lists {
		binding, err := Bind(def, sources)
		if errors.Is(err, listview.ErrMissingSource) {
			continue
		}
		if err != nil {
			return err
		}
		if err := svc.Register(binding); err != nil {
			return fmt.Errorf("catalog: register %s: %w", def.Code, err)
		}
	}
	return nil
}

// Bind resolves def against the schema and source of its resource.
func Bind(def listview.ListDefinition, sources Sources) (listview.Binding, error) {
	switch def.Resource {
	case ResourceCustomers:
		return listview.Bind(def, CustomerSchema, sources.Customers)
	case ResourceOrders:
		return listview.Bind(def, OrderSchema, sources.Orders)
	case ResourceInvoices:
		return listview.Bind(def, InvoiceSchema, sources.Invoices)
	case ResourceProducts:
		return listview.Bind(def, ProductSchema, sources.Products)
	case ResourceStockItems:
		return listview.Bind(def, StockItemSchema, sources.StockItems)
	case ResourceUsers:
		return listview.Bind(def, UserSchema, sources.Users)
	case ResourceRoles:
		return listview.Bind(def, RoleSchema, sources.Roles)
	default:
		return nil, fmt.Errorf("catalog: list %s: unknown resource %q", def.Code, def.Resource)
	}
}
