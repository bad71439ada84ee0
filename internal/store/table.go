// Package store keeps an append-only two-column table of loaded files in an
// Arrow IPC file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Column names
const (
	ColumnFilename = "filename"
	ColumnContents = "contents"
)

var ErrClosed = errors.New("table store closed")

// Schema is the layout of every record batch in the store
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: ColumnFilename, Type: arrow.BinaryTypes.String},
	{Name: ColumnContents, Type: arrow.BinaryTypes.String},
}, nil)

// Row is one stored file
type Row struct {
	Filename string
	Contents string
}

// Table is an append-only row store. Rows already in the file when it is
// opened are kept. Writes go to a staging file that replaces the target on
// Close, so an interrupted session leaves the previous file intact.
type Table struct {
	mu      sync.Mutex
	path    string
	staging string
	file    *os.File
	writer  *ipc.FileWriter
	alloc   memory.Allocator
	rows    []Row
	closed  bool
}

// Open opens or creates the table file at path. Appended rows reach path
// only when Close succeeds. A session ending without Close (crash, kill)
// loses its rows and leaves the previous file as it was.
func Open(path string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve table path: %w", err)
	}

	alloc := memory.NewGoAllocator()

	existing, err := readRows(abs, alloc)
	if err != nil {
		return nil, err
	}

	staging := abs + ".partial"
	file, err := os.Create(staging)
	if err != nil {
		return nil, fmt.Errorf("create table staging file: %w", err)
	}

	writer, err := ipc.NewFileWriter(file, ipc.WithSchema(Schema), ipc.WithAllocator(alloc))
	if err != nil {
		file.Close()
		os.Remove(staging)
		return nil, fmt.Errorf("create table writer: %w", err)
	}

	t := &Table{
		path:    abs,
		staging: staging,
		file:    file,
		writer:  writer,
		alloc:   alloc,
	}

	if len(existing) > 0 {
		if err := t.writeBatch(existing); err != nil {
			t.abort()
			return nil, err
		}
		t.rows = existing
	}
	return t, nil
}

// Append adds one row
func (t *Table) Append(filename, contents string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	row := Row{Filename: filename, Contents: contents}
	if err := t.writeBatch([]Row{row}); err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

// Rows returns a copy of all rows in insertion order
func (t *Table) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Row(nil), t.rows...)
}

// Len returns the number of rows
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// Path returns the absolute path of the table file
func (t *Table) Path() string {
	return t.path
}

// IsOpen reports whether the table still accepts rows
func (t *Table) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed
}

// Close finalizes the file. Calling Close again is a no-op.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	if err := t.writer.Close(); err != nil {
		t.file.Close()
		return fmt.Errorf("finalize table: %w", err)
	}
	if err := t.file.Close(); err != nil {
		return fmt.Errorf("close table file: %w", err)
	}
	if err := os.Rename(t.staging, t.path); err != nil {
		return fmt.Errorf("replace table file: %w", err)
	}
	return nil
}

func (t *Table) writeBatch(rows []Row) error {
	builder := array.NewRecordBuilder(t.alloc, Schema)
	defer builder.Release()

	names := builder.Field(0).(*array.StringBuilder)
	contents := builder.Field(1).(*array.StringBuilder)
	for _, r := range rows {
		names.Append(r.Filename)
		contents.Append(r.Contents)
	}

	record := builder.NewRecord()
	defer record.Release()

	if err := t.writer.Write(record); err != nil {
		return fmt.Errorf("append table rows: %w", err)
	}
	return nil
}

func (t *Table) abort() {
	t.closed = true
	t.writer.Close()
	t.file.Close()
	os.Remove(t.staging)
}

// ReadAll loads every row stored in the file at path
func ReadAll(path string) ([]Row, error) {
	return readRows(path, memory.NewGoAllocator())
}

func readRows(path string, alloc memory.Allocator) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()

	reader, err := ipc.NewFileReader(file, ipc.WithAllocator(alloc), ipc.WithSchema(Schema))
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	defer reader.Close()

	var rows []Row
	for i := 0; i < reader.NumRecords(); i++ {
		record, err := reader.Record(i)
		if err != nil {
			return nil, fmt.Errorf("read table batch %d: %w", i, err)
		}

		names, ok := record.Column(0).(*array.String)
		if !ok {
			return nil, fmt.Errorf("table column %q has type %s", ColumnFilename, record.Column(0).DataType())
		}
		contents, ok := record.Column(1).(*array.String)
		if !ok {
			return nil, fmt.Errorf("table column %q has type %s", ColumnContents, record.Column(1).DataType())
		}

		for j := 0; j < int(record.NumRows()); j++ {
			// values alias the reader's buffers
			rows = append(rows, Row{
				Filename: strings.Clone(names.Value(j)),
				Contents: strings.Clone(contents.Value(j)),
			})
		}
	}
	return rows, nil
}
