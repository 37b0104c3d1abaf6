package sheet

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS header (
	pos INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cells (
	row INTEGER NOT NULL,
	col TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (row, col)
);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLite stores rows in a single-file database, keeping the same
// whole-file overwrite contract as the other engines. Only non-empty
// cells are stored; a missing cell reads back as the empty string,
// same as any Row lookup.
type SQLite struct{}

func (SQLite) Read(path string) ([]string, []Row, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}
	defer db.Close()

	header, err := readHeader(db)
	if err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}

	crows, err := db.Query(`SELECT row, col, value FROM cells`)
	if err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}
	defer crows.Close()

	byIndex := map[int]Row{}
	maxRow := -1
	for crows.Next() {
		var n int
		var col, value string
		if err := crows.Scan(&n, &col, &value); err != nil {
			return nil, nil, &FormatError{Path: path, Err: err}
		}
		row := byIndex[n]
		if row == nil {
			row = Row{}
			byIndex[n] = row
		}
		row[col] = value
		if n > maxRow {
			maxRow = n
		}
	}
	if err := crows.Err(); err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}

	rows := make([]Row, 0, len(byIndex))
	for n := 0; n <= maxRow; n++ {
		if row, ok := byIndex[n]; ok {
			rows = append(rows, row)
		}
	}
	return header, rows, nil
}

func (SQLite) Write(path string, header []string, rows []Row, sheet string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"header", "cells", "meta"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}

	for pos, name := range header {
		if _, err := tx.Exec(`INSERT INTO header (pos, name) VALUES (?, ?)`, pos, name); err != nil {
			return err
		}
	}
	for n, row := range rows {
		for _, col := range header {
			if row[col] == "" {
				continue
			}
			if _, err := tx.Exec(`INSERT INTO cells (row, col, value) VALUES (?, ?, ?)`, n, col, row[col]); err != nil {
				return err
			}
		}
	}
	if sheet != "" {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('sheet', ?)`, sheet); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func readHeader(db *sql.DB) ([]string, error) {
	hrows, err := db.Query(`SELECT name FROM header ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer hrows.Close()

	var header []string
	for hrows.Next() {
		var name string
		if err := hrows.Scan(&name); err != nil {
			return nil, err
		}
		header = append(header, name)
	}
	return header, hrows.Err()
}
