// Package sheet stores flat, named-column rows in spreadsheet-style
// files. Engines share one contract: Read returns the header and every
// data row, Write overwrites the whole file. Nothing here knows what a
// trade is; typing the cells is the journal package's job.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Row is one record keyed by column name. Cell values are always
// strings; a missing key reads as the empty string.
type Row map[string]string

// Engine reads and writes whole tabular files. Writes are full
// overwrites, never incremental.
type Engine interface {
	Read(path string) (header []string, rows []Row, err error)
	Write(path string, header []string, rows []Row, sheet string) error
}

// FormatError reports a structurally unreadable row source. Field-level
// problems never produce one; those resolve to defaults downstream.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unreadable sheet %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ForPath selects an engine from the file extension.
func ForPath(path string) (Engine, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return Excel{}, nil
	case ".csv":
		return CSV{}, nil
	case ".db", ".sqlite":
		return SQLite{}, nil
	}
	return nil, fmt.Errorf("no sheet engine for %q files", filepath.Ext(path))
}

// fromRecords builds rows out of raw string records under a header.
// Short records are tolerated; extra cells beyond the header are
// dropped.
func fromRecords(header []string, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{}
		for i, key := range header {
			if i < len(rec) {
				row[key] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
