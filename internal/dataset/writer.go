// Package dataset manages the per-(bench, commit) CSV files that
// accumulate sampled measurements. Files are append-only after the
// header row and assume a single writer.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrSchemaMismatch reports an existing dataset whose header row
// disagrees with the configured columns.
var ErrSchemaMismatch = errors.New("dataset headers do not match")

// Record is one sampled bench measurement.
type Record struct {
	Parameter int
	Output    float64
}

// Columns names the two dataset columns, parameter first.
type Columns struct {
	Parameter string
	Output    string
}

// Path locates the dataset for one (bench, commit) pair under dataDir.
func Path(dataDir, benchFn, commit string) string {
	return filepath.Join(dataDir, benchFn, commit+".csv")
}

// Writer appends records to a single dataset file. Init must succeed
// before Append; the type enforces that ordering instead of relying on
// callers to check the filesystem.
type Writer struct {
	path  string
	cols  Columns
	ready bool
}

// NewWriter returns a writer for path in the uninitialized state.
func NewWriter(path string, cols Columns) *Writer {
	return &Writer{path: path, cols: cols}
}

// Init creates the dataset with its header row, or validates the header
// of an existing file. Matching headers (in either order) make Init a
// no-op; a mismatch fails without touching the file.
func (w *Writer) Init() error {
	f, err := os.Open(w.path)
	if errors.Is(err, os.ErrNotExist) {
		return w.create()
	}
	if err != nil {
		return fmt.Errorf("opening dataset %s: %w", w.path, err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return fmt.Errorf("reading dataset header of %s: %w", w.path, err)
	}
	if !matches(header, w.cols) {
		return fmt.Errorf("%w: %s has headers %v, want [%s %s]",
			ErrSchemaMismatch, w.path, header, w.cols.Parameter, w.cols.Output)
	}
	w.ready = true
	return nil
}

func (w *Writer) create() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("creating dataset directory for %s: %w", w.path, err)
	}
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating dataset %s: %w", w.path, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{w.cols.Parameter, w.cols.Output}); err != nil {
		f.Close()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing dataset header of %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	w.ready = true
	return nil
}

// matches compares the header as an unordered pair, the way the
// datasets have historically been validated.
func matches(header []string, cols Columns) bool {
	if len(header) != 2 {
		return false
	}
	if header[0] == cols.Parameter && header[1] == cols.Output {
		return true
	}
	return header[0] == cols.Output && header[1] == cols.Parameter
}

// Append writes records in order to the end of the file. The header is
// never rewritten and rows are never deduplicated.
func (w *Writer) Append(records ...Record) error {
	if !w.ready {
		return fmt.Errorf("dataset %s not initialized", w.path)
	}
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening dataset %s for append: %w", w.path, err)
	}
	cw := csv.NewWriter(f)
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Parameter),
			strconv.FormatFloat(rec.Output, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("appending to dataset %s: %w", w.path, err)
	}
	return f.Close()
}
