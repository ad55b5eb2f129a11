package reports

import (
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/shopspring/decimal"
)

// Cell is one rendered value. Numeric cells become typed number cells in the
// workbook and plain decimal text in the document; everything else is text.
type Cell struct {
	text    string
	number  float64
	numeric bool
}

func TextCell(s string) Cell {
	return Cell{text: s}
}

func TextPtrCell(s *string) Cell {
	return Cell{text: utils.DereferencePtr(s)}
}

func DecimalCell(d decimal.Decimal) Cell {
	return Cell{text: d.String(), number: d.InexactFloat64(), numeric: true}
}

// MinutesCell renders a nullable minute count; nil renders as 0.
func MinutesCell(minutes *int64) Cell {
	var m int64
	if minutes != nil {
		m = *minutes
	}
	return Cell{text: decimal.NewFromInt(m).String(), number: float64(m), numeric: true}
}

// Column pairs a header label with the extractor producing that column's cell.
type Column[T any] struct {
	Label string
	Cell  func(T) Cell
}

func headerLabels[T any](columns []Column[T]) []string {
	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = col.Label
	}
	return labels
}

func extractCells[T any](columns []Column[T], rows []T) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(columns))
		for j, col := range columns {
			cells[j] = col.Cell(row)
		}
		out[i] = cells
	}
	return out
}

// agentLabel prefers the display name, falling back to the raw agent id.
func agentLabel(agentName string, agentId string) string {
	if agentName != "" {
		return agentName
	}
	return agentId
}

var salesColumns = []Column[SalesReportRow]{
	{"Invoice No", func(r SalesReportRow) Cell { return TextCell(r.InvoiceNo) }},
	{"Agent", func(r SalesReportRow) Cell { return TextCell(agentLabel(r.AgentName, r.AgentId)) }},
	{"Customer", func(r SalesReportRow) Cell { return TextPtrCell(r.CustomerName) }},
	{"Product", func(r SalesReportRow) Cell { return TextPtrCell(r.ProductName) }},
	{"Total", func(r SalesReportRow) Cell { return DecimalCell(r.Total) }},
	{"Status", func(r SalesReportRow) Cell { return TextCell(r.Status) }},
	{"Invoice Date", func(r SalesReportRow) Cell { return TextCell(r.InvoiceDate.String()) }},
}

var attendanceColumns = []Column[AttendanceReportRow]{
	{"Agent", func(r AttendanceReportRow) Cell { return TextCell(agentLabel(r.AgentName, r.AgentId)) }},
	{"Date", func(r AttendanceReportRow) Cell { return TextCell(r.Date.String()) }},
	{"Check-in", func(r AttendanceReportRow) Cell { return TextCell(r.CheckInTime.Format("2006-01-02 15:04")) }},
	{"Check-out", func(r AttendanceReportRow) Cell {
		if r.CheckOutTime == nil {
			return TextCell("")
		}
		return TextCell(r.CheckOutTime.Format("2006-01-02 15:04"))
	}},
	{"Duration (min)", func(r AttendanceReportRow) Cell { return MinutesCell(r.TotalDurationMinutes) }},
	{"Status", func(r AttendanceReportRow) Cell { return TextCell(r.Status) }},
}

var ordersColumns = []Column[OrdersReportRow]{
	{"Order No", func(r OrdersReportRow) Cell { return TextCell(r.OrderNumber) }},
	{"Customer", func(r OrdersReportRow) Cell { return TextCell(r.CustomerName) }},
	{"Amount", func(r OrdersReportRow) Cell { return DecimalCell(r.Amount) }},
	{"Status", func(r OrdersReportRow) Cell { return TextCell(r.Status) }},
	{"Created", func(r OrdersReportRow) Cell { return TextCell(r.CreatedDate.String()) }},
}
