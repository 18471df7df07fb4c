package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/goliatone/go-listview/components/listview"
	"github.com/goliatone/go-listview/pkg/catalog"
)

type queryCmd struct {
	List    string   `arg:"" help:"List code (customers, orders, invoices, ...)."`
	Search  string   `short:"s" help:"Search term."`
	Filter  []string `short:"f" help:"Exact-match filter as key=value (repeatable)."`
	Sort    string   `help:"Sort as key or key:asc|desc."`
	Page    int      `short:"p" default:"1" help:"Page number."`
	JSON    bool     `name:"json" help:"Print the view payload as JSON."`
	Summary bool     `help:"Print list statistics after the table."`
}

func (cmd *queryCmd) Run(ctx context.Context, g *Globals) error {
	svc := listview.NewService(listview.Options{Telemetry: g.telemetry()})
	if err := catalog.Install(svc, catalog.DefaultSources()); err != nil {
		return fmt.Errorf("listctl: install catalog: %w", err)
	}
	view, err := cmd.apply(ctx, svc, listview.ViewerContext{UserID: "listctl"})
	if err != nil {
		return err
	}

	out := g.writer()
	if cmd.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	fmt.Fprintln(out, renderTable(view))
	fmt.Fprintf(out, "page %d/%d, %d matching\n", view.Page, view.TotalPages, view.Total)
	if !cmd.Summary {
		return nil
	}
	summary, err := svc.Summary(ctx, listview.ViewerContext{UserID: "listctl"}, cmd.List)
	if err != nil {
		return err
	}
	for _, b := range summary.Summary.Buckets {
		fmt.Fprintf(out, "%s: %d (%.1f%%)\n", b.Key, b.Count, b.Percent)
	}
	return nil
}

func (cmd *queryCmd) apply(ctx context.Context, svc *listview.Service, viewer listview.ViewerContext) (listview.ViewPayload, error) {
	view, err := svc.View(ctx, viewer, cmd.List)
	if err != nil {
		return view, err
	}
	if cmd.Search != "" {
		if view, err = svc.SetSearchTerm(ctx, viewer, cmd.List, cmd.Search); err != nil {
			return view, err
		}
	}
	for _, raw := range cmd.Filter {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return view, fmt.Errorf("listctl: filter %q must be key=value", raw)
		}
		if view, err = svc.SetFilter(ctx, viewer, cmd.List, key, value); err != nil {
			return view, err
		}
	}
	if cmd.Sort != "" {
		state, err := listview.ParseSort(cmd.Sort)
		if err != nil {
			return view, err
		}
		// Requesting a sort toggles, so walk until the wanted direction is active.
		for range 3 {
			if view.Sort == state {
				break
			}
			if view, err = svc.RequestSort(ctx, viewer, cmd.List, state.Key); err != nil {
				return view, err
			}
		}
	}
	if cmd.Page > 1 {
		if view, err = svc.SetPage(ctx, viewer, cmd.List, cmd.Page); err != nil {
			return view, err
		}
	}
	return view, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderTable(view listview.ViewPayload) string {
	headers := make([]string, len(view.Columns))
	for i, col := range view.Columns {
		label := col.Label
		if view.Sort.Key == col.Key {
			label += sortMarker(view.Sort.Direction)
		}
		headers[i] = label
	}
	rows := make([][]string, len(view.Rows))
	for i, row := range view.Rows {
		rows[i] = row.Cells
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func sortMarker(dir listview.SortDirection) string {
	if dir == listview.SortDescending {
		return " ▼"
	}
	return " ▲"
}
