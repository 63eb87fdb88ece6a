package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"maptojson/internal/export"
	"maptojson/internal/plugin"
)

// cliHost stands in for the editor's save dialog and message boxes.
type cliHost struct {
	out    string
	logger *log.Logger
}

func (h *cliHost) ChooseDestination(defaultName, defaultFolder string) (string, bool, error) {
	if h.out != "" {
		return h.out, true, nil
	}
	if defaultFolder == "" {
		return "", false, fmt.Errorf("no destination folder")
	}
	return filepath.Join(defaultFolder, defaultName), true, nil
}

func (h *cliHost) ReportSuccess(res export.Result) {
	kind := "json"
	if res.Compressed {
		kind = "json+zstd"
	}
	c := res.Counts
	h.logger.Printf("wrote %s (%s, %s) level=%q points=%d lines=%d polygons=%d objects=%d sides=%d sha256=%s",
		res.Path, humanize.Bytes(uint64(res.Bytes)), kind, res.LevelName,
		c.Points, c.Lines, c.Polygons, c.Objects, c.Sides, res.Digest)
}

func (h *cliHost) ReportFailure(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n  %s\n", title, plugin.ErrorText, message)
}
