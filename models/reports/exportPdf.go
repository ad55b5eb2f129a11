package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderDocument serializes rows into a landscape PDF payload: bold
// "<org> - <title>" line, the date-range caption, a blank line, then a
// bordered table. Page breaks are handled by the layout engine.
func RenderDocument(orgName string, title string, dateRange string, headers []string, rows [][]Cell) ([]byte, error) {

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s", orgName, title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, dateRange, "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pageWidth, _ := pdf.GetPageSize()
	marginLeft, _, marginRight, _ := pdf.GetMargins()
	colWidth := (pageWidth - marginLeft - marginRight) / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for _, c := range row {
			pdf.CellFormat(colWidth, 6, c.text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
