// Package csvfile loads delimited transaction files into raw datasets. Shape
// validation (parseable table, required columns, at least one data row)
// happens here; type coercion is the cleaner's job.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
)

// Loader reads delimited tabular files.
type Loader struct {
	comma rune
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(c rune) Option {
	return func(l *Loader) {
		if c != 0 {
			l.comma = c
		}
	}
}

// New constructs a Loader with defaults applied.
func New(opts ...Option) *Loader {
	l := &Loader{comma: ','}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path into a raw dataset. The header row is
// standardized before the required-column check; rows keep their cell values
// untouched. Nothing is written anywhere on failure.
func (l *Loader) Load(ctx context.Context, path string) (model.RawDataset, error) {
	if err := ctx.Err(); err != nil {
		return model.RawDataset{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.RawDataset{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return model.RawDataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return model.RawDataset{}, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	r := csv.NewReader(f)
	r.Comma = l.comma
	// FieldsPerRecord defaults to the header width; ragged rows are a parse
	// error rather than a silently misaligned dataset.

	header, err := r.Read()
	if err == io.EOF {
		return model.RawDataset{}, fmt.Errorf("%w: %s is empty", ErrMalformedInput, path)
	}
	if err != nil {
		return model.RawDataset{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = model.StandardizeColumn(h)
	}
	for _, required := range model.RequiredColumns {
		if !contains(columns, required) {
			return model.RawDataset{}, fmt.Errorf("%w: %s", ErrSchema, required)
		}
	}

	var rows []model.Row
	for {
		if err := ctx.Err(); err != nil {
			return model.RawDataset{}, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.RawDataset{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		row := make(model.Row, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return model.RawDataset{}, fmt.Errorf("%w: %s has no data rows", ErrMalformedInput, path)
	}

	return model.RawDataset{Columns: columns, Rows: rows}, nil
}

func contains(columns []string, want string) bool {
	for _, c := range columns {
		if c == want {
			return true
		}
	}
	return false
}
