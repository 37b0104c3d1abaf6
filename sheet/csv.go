package sheet

import (
	"encoding/csv"
	"os"
)

// CSV stores rows as a plain comma-separated file. CSV has no notion of
// a sheet label, so Write ignores it.
type CSV struct{}

func (CSV) Read(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], fromRecords(records[0], records[1:]), nil
}

func (CSV) Write(path string, header []string, rows []Row, sheet string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(header))
		for i, key := range header {
			rec[i] = row[key]
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
