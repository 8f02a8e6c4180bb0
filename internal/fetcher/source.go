// Package fetcher reads market datasets from XLSX, CSV, and JSON files.
package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/realty-insights/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions with no reader.
var ErrUnsupportedFormat = eris.New("fetcher: unsupported file format")

// FileOptions tunes the format readers. The zero value reads the first
// XLSX sheet and comma-separated CSV.
type FileOptions struct {
	Sheet string // xlsx sheet name
	CSV   CSVOptions
}

// FileSource loads records from a file on disk, picking the reader by extension.
type FileSource struct {
	Path    string
	Options FileOptions
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string, opts FileOptions) *FileSource {
	return &FileSource{Path: path, Options: opts}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.Path
}

// Records reads and parses the file.
func (s *FileSource) Records(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "fetcher: context cancelled")
	}

	switch ext := strings.ToLower(filepath.Ext(s.Path)); ext {
	case ".xlsx":
		rows, err := ReadXLSX(s.Path, XLSXOptions{SheetName: s.Options.Sheet})
		if err != nil {
			return nil, err
		}
		return ParseRecords(rows)

	case ".csv":
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: open csv")
		}
		defer f.Close() //nolint:errcheck

		csvOpts := s.Options.CSV
		csvOpts.TrimSpace = true
		rows, err := ReadCSV(f, csvOpts)
		if err != nil {
			return nil, err
		}
		return ParseRecords(rows)

	case ".json":
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: open json")
		}
		defer f.Close() //nolint:errcheck
		return ReadJSONRecords(f)

	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}
