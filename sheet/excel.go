package sheet

import (
	"github.com/xuri/excelize/v2"
)

// Excel stores rows in an .xlsx workbook with a single sheet. Read takes
// whatever the first sheet is called; Write names it.
type Excel struct{}

func (Excel) Read(path string) ([]string, []Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, &FormatError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], fromRecords(records[0], records[1:]), nil
}

func (Excel) Write(path string, header []string, rows []Row, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	cells := make([]interface{}, len(header))
	for i, key := range header {
		cells[i] = key
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}

	for n, row := range rows {
		for i, key := range header {
			cells[i] = row[key]
		}
		ref, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, ref, &cells); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
