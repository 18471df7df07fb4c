package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	"github.com/goliatone/go-listview/components/listview"
)

type Globals struct {
	Verbose bool `short:"v" help:"Log list telemetry to stderr."`

	out io.Writer `kong:"-"`
}

type cli struct {
	Globals

	Query    queryCmd    `cmd:"" help:"Run search, filters, sort, and paging over the demo catalog."`
	Validate validateCmd `cmd:"" help:"Decode and schema-validate a list manifest."`
	Scaffold scaffoldCmd `cmd:"" help:"Append a list definition to a manifest."`
}

func main() {
	app := cli{Globals: Globals{out: os.Stdout}}
	ctx := kong.Parse(&app,
		kong.Name("listctl"),
		kong.Description("Inspect and scaffold go-listview list manifests."),
		kong.UsageOnError(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	err := ctx.Run(&app.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) telemetry() listview.Telemetry {
	if !g.Verbose {
		return nil
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           charmlog.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "listctl",
	})
	return listview.NewLogTelemetry(logger)
}

func (g *Globals) writer() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}
