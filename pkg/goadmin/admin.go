package goadmin

import (
	"context"
	"errors"
	"strings"

	listviewpkg "github.com/goliatone/go-listview/pkg/listview"
)

// MenuBuilder ensures list entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures list link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Path     string
	Icon     string
	Position int
}

// Config wires the list service + feature flags into an admin shell.
type Config struct {
	EnableLists  bool
	MenuCode     string
	MenuBuilder  MenuBuilder
	Service      *listviewpkg.Service
	BasePath     string
	RoutePrefix  string
	Icon         string
	BasePosition int
	// Icons overrides the icon per list code.
	Icons        map[string]string
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed list menus.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableLists && cfg.Service == nil {
		return nil, errors.New("goadmin: list service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/admin/lists"
	}
	if cfg.RoutePrefix == "" {
		cfg.RoutePrefix = "admin.lists"
	}
	if cfg.Icon == "" {
		cfg.Icon = "table"
	}
	if cfg.BasePosition == 0 {
		cfg.BasePosition = 100
	}
	return &Admin{cfg: cfg}, nil
}

// Lists exposes the configured list service when enabled.
func (a *Admin) Lists() *listviewpkg.Service {
	if !a.cfg.EnableLists {
		return nil
	}
	return a.cfg.Service
}

// MenuItems returns one entry per registered list, in list code order.
func (a *Admin) MenuItems() []MenuItem {
	if !a.cfg.EnableLists {
		return nil
	}
	defs := a.cfg.Service.Lists()
	items := make([]MenuItem, 0, len(defs))
	for i, def := range defs {
		icon := a.cfg.Icon
		if override := a.cfg.Icons[def.Code]; override != "" {
			icon = override
		}
		items = append(items, MenuItem{
			Label:    def.Name,
			Route:    a.cfg.RoutePrefix + "." + def.Code,
			Path:     strings.TrimRight(a.cfg.BasePath, "/") + "/" + def.Code,
			Icon:     icon,
			Position: a.cfg.BasePosition + i,
		})
	}
	return items
}

// Bootstrap seeds menu entries when list support is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableLists || a.cfg.MenuBuilder == nil {
		return nil
	}
	for _, item := range a.MenuItems() {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return err
		}
	}
	return nil
}
