package reports_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/models/reports"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func exportSource() *memSource {
	out := at(2024, 1, 2, 17, 30)
	return &memSource{
		invoices: []models.Invoice{
			{
				ID:               "inv-1",
				InvoiceNo:        "INV-001",
				AgentId:          "agent-1",
				AgentName:        "Asha",
				CustomerSnapshot: `{"name":"Acme Traders"}`,
				Total:            decimal.NewFromFloat(150.5),
				Status:           "PAID",
				InvoiceDate:      at(2024, 1, 2, 10, 0),
				CreatedAt:        at(2024, 1, 2, 10, 0),
			},
		},
		items: map[string][]models.InvoiceLineItem{
			"inv-1": {{ID: 1, InvoiceId: "inv-1", Name: "RO Filter"}},
		},
		attendance: []models.AttendanceRecord{
			{ID: "rec-1", AgentId: "agent-1", AgentName: "Asha", CheckInTime: at(2024, 1, 2, 9, 0), CheckOutTime: &out, Status: "PRESENT"},
		},
		orders: []models.SalesOrder{
			{ID: "o1", OrderNumber: "SO-001", CustomerName: "Acme", Amount: decimal.NewFromInt(500), Status: "Pending", CreatedAt: at(2024, 1, 2, 12, 0)},
		},
	}
}

func exportParams() reports.ExportParams {
	return reports.ExportParams{From: day(2024, 1, 1), To: day(2024, 1, 31)}
}

func TestExportWorkbookHeadersAndValues(t *testing.T) {
	export, err := reports.ExportReport(context.Background(), exportSource(), time.UTC, "Candor Water Tech",
		reports.ReportTypeSales, reports.FormatWorkbook, exportParams())
	if err != nil {
		t.Fatalf("ExportReport: %v", err)
	}
	if export.Filename != "sales-report.xlsx" {
		t.Errorf("filename = %s, want sales-report.xlsx", export.Filename)
	}
	if export.ContentType != reports.ContentTypeWorkbook {
		t.Errorf("content type = %s", export.ContentType)
	}

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sales")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 data row, got %d rows", len(rows))
	}

	wantHeaders := []string{"Invoice No", "Agent", "Customer", "Product", "Total", "Status", "Invoice Date"}
	if !reflect.DeepEqual(rows[0], wantHeaders) {
		t.Errorf("headers = %v, want %v", rows[0], wantHeaders)
	}

	want := []string{"INV-001", "Asha", "Acme Traders", "RO Filter", "150.5", "PAID", "2024-01-02"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("data row = %v, want %v", rows[1], want)
	}
}

func TestExportWorkbookSchemasPerType(t *testing.T) {
	cases := []struct {
		typ     reports.ReportType
		sheet   string
		headers []string
	}{
		{reports.ReportTypeAttendance, "Attendance", []string{"Agent", "Date", "Check-in", "Check-out", "Duration (min)", "Status"}},
		{reports.ReportTypeOrders, "Orders", []string{"Order No", "Customer", "Amount", "Status", "Created"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			export, err := reports.ExportReport(context.Background(), exportSource(), time.UTC, "Candor Water Tech",
				tc.typ, reports.FormatWorkbook, exportParams())
			if err != nil {
				t.Fatalf("ExportReport: %v", err)
			}
			f, err := excelize.OpenReader(bytes.NewReader(export.Data))
			if err != nil {
				t.Fatalf("open workbook: %v", err)
			}
			defer f.Close()

			rows, err := f.GetRows(tc.sheet)
			if err != nil {
				t.Fatalf("read sheet %s: %v", tc.sheet, err)
			}
			if len(rows) == 0 || !reflect.DeepEqual(rows[0], tc.headers) {
				t.Errorf("headers = %v, want %v", rows[0], tc.headers)
			}
		})
	}
}

func TestExportDocument(t *testing.T) {
	for _, typ := range []reports.ReportType{reports.ReportTypeSales, reports.ReportTypeAttendance, reports.ReportTypeOrders} {
		export, err := reports.ExportReport(context.Background(), exportSource(), time.UTC, "Candor Water Tech",
			typ, reports.FormatDocument, exportParams())
		if err != nil {
			t.Fatalf("ExportReport(%s): %v", typ, err)
		}
		if export.Filename != string(typ)+"-report.pdf" {
			t.Errorf("filename = %s, want %s-report.pdf", export.Filename, typ)
		}
		if export.ContentType != reports.ContentTypeDocument {
			t.Errorf("content type = %s", export.ContentType)
		}
		if !bytes.HasPrefix(export.Data, []byte("%PDF-")) {
			t.Errorf("payload for %s is not a PDF", typ)
		}
	}
}

func TestExportValidation(t *testing.T) {
	_, err := reports.ExportReport(context.Background(), exportSource(), time.UTC, "Candor Water Tech",
		reports.ReportType("weekly"), reports.FormatWorkbook, exportParams())
	if !errors.Is(err, reports.ErrUnknownReportType) {
		t.Errorf("expected ErrUnknownReportType, got %v", err)
	}

	p := exportParams()
	p.From = time.Time{}
	_, err = reports.ExportReport(context.Background(), exportSource(), time.UTC, "Candor Water Tech",
		reports.ReportTypeSales, reports.FormatWorkbook, p)
	if !errors.Is(err, reports.ErrIncompleteDateRange) {
		t.Errorf("expected ErrIncompleteDateRange, got %v", err)
	}
}

func TestParseReportType(t *testing.T) {
	for in, want := range map[string]reports.ReportType{
		"SALES":      reports.ReportTypeSales,
		"sales":      reports.ReportTypeSales,
		"Attendance": reports.ReportTypeAttendance,
		" orders ":   reports.ReportTypeOrders,
	} {
		got, err := reports.ParseReportType(in)
		if err != nil || got != want {
			t.Errorf("ParseReportType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := reports.ParseReportType("weekly"); !errors.Is(err, reports.ErrUnknownReportType) {
		t.Errorf("expected ErrUnknownReportType for bad tag, got %v", err)
	}
}
