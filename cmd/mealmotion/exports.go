package main

import (
	"context"
	"fmt"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/export"
	"github.com/myrjola/mealmotion/internal/planner"
	"golang.org/x/sync/errgroup"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var errUnknownFormat = errors.NewSentinel("unknown export format")

// exporter writes one export file of a plan.
type exporter struct {
	fileName string
	write    func(w io.Writer, plan *planner.WeeklyPlan) error
}

//nolint:gochecknoglobals // format registry.
var exporters = map[string]exporter{
	"csv": {fileName: export.CSVFileName, write: export.WriteCSV},
	"shopping": {fileName: export.ShoppingListFileName, write: func(w io.Writer, plan *planner.WeeklyPlan) error {
		return export.WriteShoppingList(w, export.BuildShoppingList(plan))
	}},
	"xlsx": {fileName: export.WorkbookFileName, write: export.WriteWorkbook},
	"html": {fileName: export.HTMLFileName, write: export.WriteHTML},
}

// parseFormats splits a comma separated format list, dropping blanks and duplicates.
func parseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		if _, ok := exporters[f]; !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownFormat, f)
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: none selected", errUnknownFormat)
	}
	return formats, nil
}

// writeExports writes every selected format into dir concurrently.
func writeExports(
	ctx context.Context,
	logger *slog.Logger,
	dir string,
	formats []string,
	plan *planner.WeeklyPlan,
) error {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:mnd // rwxr-x---
		return errors.Wrap(err, "create output directory")
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		e := exporters[format]
		path := filepath.Join(dir, e.fileName)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "export cancelled", slog.String("format", format))
			}
			if err := writeFile(path, plan, e.write); err != nil {
				return errors.Wrap(err, "export", slog.String("format", format), slog.String("path", path))
			}
			logger.LogAttrs(ctx, slog.LevelInfo, "wrote export", slog.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck // wrapped inside the goroutines.
	}
	return nil
}

func writeFile(
	path string,
	plan *planner.WeeklyPlan,
	write func(io.Writer, *planner.WeeklyPlan) error,
) (err error) {
	defer func() {
		if excp := recover(); excp != nil {
			err = errors.DecoratePanic(excp)
		}
	}()

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create file")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close file")
		}
	}()
	return write(f, plan)
}
