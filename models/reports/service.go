package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type ReportType string

const (
	ReportTypeSales      ReportType = "sales"
	ReportTypeAttendance ReportType = "attendance"
	ReportTypeOrders     ReportType = "orders"
)

type Format string

const (
	FormatWorkbook Format = "xlsx"
	FormatDocument Format = "pdf"
)

const (
	ContentTypeWorkbook = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeDocument = "application/pdf"
)

var (
	ErrUnknownReportType   = errors.New("unknown report type")
	ErrIncompleteDateRange = errors.New("from and to dates are required")
)

// ParseReportType accepts the tag case-insensitively ("sales", "SALES").
func ParseReportType(s string) (ReportType, error) {
	switch ReportType(strings.ToLower(strings.TrimSpace(s))) {
	case ReportTypeSales:
		return ReportTypeSales, nil
	case ReportTypeAttendance:
		return ReportTypeAttendance, nil
	case ReportTypeOrders:
		return ReportTypeOrders, nil
	}
	return "", ErrUnknownReportType
}

// ExportParams carries the date range plus the per-type optional filter;
// AgentId applies to sales and attendance, Status to orders.
type ExportParams struct {
	From    time.Time
	To      time.Time
	AgentId string
	Status  string
}

type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}

type reportDef struct {
	title string
	stem  string
	sheet string
	run   func(ctx context.Context, src Source, loc *time.Location, p ExportParams) ([]string, [][]Cell, error)
}

// One entry per report type: aggregator binding, schema, export naming.
var reportDefs = map[ReportType]reportDef{
	ReportTypeSales: {
		title: "Sales Performance Report",
		stem:  "sales-report",
		sheet: "Sales",
		run: func(ctx context.Context, src Source, loc *time.Location, p ExportParams) ([]string, [][]Cell, error) {
			rows, err := SalesReport(ctx, src, loc, p.From, p.To, p.AgentId)
			if err != nil {
				return nil, nil, err
			}
			return headerLabels(salesColumns), extractCells(salesColumns, rows), nil
		},
	},
	ReportTypeAttendance: {
		title: "Attendance & Visit Report",
		stem:  "attendance-report",
		sheet: "Attendance",
		run: func(ctx context.Context, src Source, loc *time.Location, p ExportParams) ([]string, [][]Cell, error) {
			rows, err := AttendanceReport(ctx, src, loc, p.From, p.To, p.AgentId)
			if err != nil {
				return nil, nil, err
			}
			return headerLabels(attendanceColumns), extractCells(attendanceColumns, rows), nil
		},
	},
	ReportTypeOrders: {
		title: "Orders / Pipeline Report",
		stem:  "orders-report",
		sheet: "Orders",
		run: func(ctx context.Context, src Source, loc *time.Location, p ExportParams) ([]string, [][]Cell, error) {
			rows, err := OrdersReport(ctx, src, loc, p.From, p.To, p.Status)
			if err != nil {
				return nil, nil, err
			}
			return headerLabels(ordersColumns), extractCells(ordersColumns, rows), nil
		},
	},
}

// ExportReport aggregates the requested report and serializes it in the
// requested format, returning the payload with its download filename and
// media type.
func ExportReport(ctx context.Context, src Source, loc *time.Location, orgName string, typ ReportType, format Format, p ExportParams) (*Export, error) {

	if p.From.IsZero() || p.To.IsZero() {
		return nil, ErrIncompleteDateRange
	}
	def, ok := reportDefs[typ]
	if !ok {
		return nil, ErrUnknownReportType
	}

	headers, cells, err := def.run(ctx, src, loc, p)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatWorkbook:
		data, err := RenderWorkbook(def.sheet, headers, cells)
		if err != nil {
			return nil, err
		}
		return &Export{
			Data:        data,
			Filename:    def.stem + ".xlsx",
			ContentType: ContentTypeWorkbook,
		}, nil
	case FormatDocument:
		dateRange := fmt.Sprintf("From %s to %s",
			p.From.Format("2006-01-02"), p.To.Format("2006-01-02"))
		data, err := RenderDocument(orgName, def.title, dateRange, headers, cells)
		if err != nil {
			return nil, err
		}
		return &Export{
			Data:        data,
			Filename:    def.stem + ".pdf",
			ContentType: ContentTypeDocument,
		}, nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}
