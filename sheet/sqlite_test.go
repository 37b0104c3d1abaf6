package sheet

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")

	assert.NoError(t, SQLite{}.Write(path, testHeader, testRows(), "Journal"))

	header, rows, err := SQLite{}.Read(path)
	assert.NoError(t, err)
	assert.Equal(t, testHeader, header)
	assert.Equal(t, testRows(), rows)
}

func TestSQLiteWriteOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")

	assert.NoError(t, SQLite{}.Write(path, testHeader, testRows(), ""))
	assert.NoError(t, SQLite{}.Write(path, testHeader, testRows()[:1], ""))

	_, rows, err := SQLite{}.Read(path)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "T1", rows[0]["Trade Id"])
}

func TestSQLiteEmptyCellsOmitted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")
	rows := []Row{{"Trade Id": "T1", "Pair": "", "Notes": "n"}}

	assert.NoError(t, SQLite{}.Write(path, testHeader, rows, ""))

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var count int
	assert.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cells`).Scan(&count))
	assert.Equal(t, 2, count)

	// the omitted cell still reads back as empty string
	_, got, err := SQLite{}.Read(path)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "", got[0]["Pair"])
}

func TestSQLiteSheetLabelStored(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")
	assert.NoError(t, SQLite{}.Write(path, testHeader, nil, "Trading Journal"))

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var label string
	assert.NoError(t, db.QueryRow(`SELECT value FROM meta WHERE key = 'sheet'`).Scan(&label))
	assert.Equal(t, "Trading Journal", label)
}

func TestSQLiteReadMissingTablesIsFormatError(t *testing.T) {
	t.Parallel()

	// an empty database file has no header table
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	assert.NoError(t, db.Ping())
	assert.NoError(t, db.Close())

	_, _, err = SQLite{}.Read(path)
	var fErr *FormatError
	assert.ErrorAs(t, err, &fErr)
}
