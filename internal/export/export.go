// Package export writes a recorded run as CSV, JSON or a PNG/SVG chart.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/faraday/internal/sim"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatCSV, FormatJSON, FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func Write(w io.Writer, tr *sim.Trace, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, tr)
	case FormatJSON:
		return WriteJSON(w, tr)
	case FormatPNG, FormatSVG:
		return WriteChart(w, tr, f)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// ToFile writes tr to path in the format named by its extension.
func ToFile(path string, tr *sim.Trace) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, tr, f); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
