package main

import (
	"context"
	"fmt"

	"github.com/goliatone/go-listview/components/listview"
)

type validateCmd struct {
	Path string `arg:"" type:"existingfile" help:"Manifest YAML file to check."`
}

func (cmd *validateCmd) Run(_ context.Context, g *Globals) error {
	doc, err := listview.ReadManifest(cmd.Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.writer(), "✓ %s: %d lists (version %s)\n", cmd.Path, len(doc.Lists), doc.Version)
	return nil
}
