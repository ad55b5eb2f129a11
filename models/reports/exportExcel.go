package reports

import (
	"github.com/xuri/excelize/v2"
)

// RenderWorkbook serializes rows into a single-sheet xlsx payload: bold
// header labels on row 0, typed numeric cells, columns sized to content.
func RenderWorkbook(sheetName string, headers []string, rows [][]Cell) ([]byte, error) {

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[col] = len(h)
	}

	for i, row := range rows {
		for col, c := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if c.numeric {
				err = f.SetCellValue(sheetName, cell, c.number)
			} else {
				err = f.SetCellValue(sheetName, cell, c.text)
			}
			if err != nil {
				return nil, err
			}
			if col < len(widths) && len(c.text) > widths[col] {
				widths[col] = len(c.text)
			}
		}
	}

	// Size columns to fit content after population.
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(w)+2); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
