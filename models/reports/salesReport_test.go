package reports_test

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/models/reports"
	"github.com/shopspring/decimal"
)

func TestSalesReportFanOutJoin(t *testing.T) {
	src := &memSource{
		invoices: []models.Invoice{
			{
				ID:          "inv-1",
				InvoiceNo:   "INV-001",
				AgentId:     "agent-1",
				AgentName:   "Asha",
				Total:       decimal.NewFromInt(100),
				Status:      "PAID",
				InvoiceDate: at(2024, 1, 1, 10, 0),
				CreatedAt:   at(2024, 1, 1, 10, 0),
			},
			{
				ID:          "inv-2",
				InvoiceNo:   "INV-002",
				AgentId:     "agent-2",
				AgentName:   "Ravi",
				Total:       decimal.NewFromInt(250),
				Status:      "PENDING",
				InvoiceDate: at(2024, 1, 5, 11, 0),
				CreatedAt:   at(2024, 1, 5, 11, 0),
			},
		},
		items: map[string][]models.InvoiceLineItem{
			"inv-2": {
				{ID: 1, InvoiceId: "inv-2", Name: "RO Filter"},
				{ID: 2, InvoiceId: "inv-2", Name: "UV Lamp"},
			},
		},
	}

	rows, err := reports.SalesReport(context.Background(), src, time.UTC, day(2024, 1, 1), day(2024, 1, 5), "")
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (1 item-less + 2 line items), got %d", len(rows))
	}

	// The invoice with no line items still yields one row with a nil product.
	if rows[0].InvoiceId != "inv-1" {
		t.Fatalf("expected inv-1 first, got %s", rows[0].InvoiceId)
	}
	if rows[0].ProductName != nil {
		t.Errorf("expected nil product for item-less invoice, got %q", *rows[0].ProductName)
	}

	// Line items of one invoice are contiguous.
	if rows[1].InvoiceId != "inv-2" || rows[2].InvoiceId != "inv-2" {
		t.Fatalf("expected inv-2 rows to be contiguous, got %s then %s", rows[1].InvoiceId, rows[2].InvoiceId)
	}
	if *rows[1].ProductName != "RO Filter" || *rows[2].ProductName != "UV Lamp" {
		t.Errorf("unexpected products %q, %q", *rows[1].ProductName, *rows[2].ProductName)
	}
	if rows[1].InvoiceDate.String() != "2024-01-05" {
		t.Errorf("expected invoice date 2024-01-05, got %s", rows[1].InvoiceDate)
	}
}

func TestSalesReportWindowBoundaries(t *testing.T) {
	src := &memSource{
		invoices: []models.Invoice{
			{ID: "at-start", CreatedAt: at(2024, 3, 10, 0, 0), InvoiceDate: at(2024, 3, 10, 0, 0)},
			{ID: "inside", CreatedAt: at(2024, 3, 11, 23, 59), InvoiceDate: at(2024, 3, 11, 23, 59)},
			{ID: "at-upper-bound", CreatedAt: at(2024, 3, 13, 0, 0), InvoiceDate: at(2024, 3, 13, 0, 0)},
		},
		items: map[string][]models.InvoiceLineItem{},
	}

	rows, err := reports.SalesReport(context.Background(), src, time.UTC, day(2024, 3, 10), day(2024, 3, 12), "")
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.InvoiceId == "at-upper-bound" {
			t.Errorf("invoice at to+1d 00:00 must be excluded")
		}
	}
}

func TestSalesReportAgentFilter(t *testing.T) {
	src := &memSource{
		invoices: []models.Invoice{
			{ID: "a", AgentId: "agent-1", CreatedAt: at(2024, 2, 1, 9, 0), InvoiceDate: at(2024, 2, 1, 9, 0)},
			{ID: "b", AgentId: "agent-2", CreatedAt: at(2024, 2, 1, 9, 0), InvoiceDate: at(2024, 2, 1, 9, 0)},
		},
		items: map[string][]models.InvoiceLineItem{},
	}

	rows, err := reports.SalesReport(context.Background(), src, time.UTC, day(2024, 2, 1), day(2024, 2, 1), "agent-1")
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(rows) != 1 || rows[0].AgentId != "agent-1" {
		t.Fatalf("expected only agent-1 rows, got %+v", rows)
	}

	// Blank filter keeps everything.
	rows, err = reports.SalesReport(context.Background(), src, time.UTC, day(2024, 2, 1), day(2024, 2, 1), "  ")
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows with blank filter, got %d", len(rows))
	}
}

func TestSalesReportCustomerNameExtraction(t *testing.T) {
	cases := []struct {
		name     string
		snapshot string
		want     *string
	}{
		{"well-formed", `{"name":"Acme Traders","city":"Pune"}`, strPtr("Acme Traders")},
		{"name absent", `{"city":"Pune"}`, nil},
		{"malformed json", `{"name":"Acme`, nil},
		{"empty blob", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &memSource{
				invoices: []models.Invoice{
					{ID: "inv", CustomerSnapshot: tc.snapshot, CreatedAt: at(2024, 1, 1, 8, 0), InvoiceDate: at(2024, 1, 1, 8, 0)},
				},
				items: map[string][]models.InvoiceLineItem{},
			}
			rows, err := reports.SalesReport(context.Background(), src, time.UTC, day(2024, 1, 1), day(2024, 1, 1), "")
			if err != nil {
				t.Fatalf("SalesReport: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}
			got := rows[0].CustomerName
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("customer name presence mismatch: got %v want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("customer name = %q, want %q", *got, *tc.want)
			}
		})
	}
}

func TestSalesReportInvertedRangeIsEmpty(t *testing.T) {
	src := &memSource{
		invoices: []models.Invoice{
			{ID: "inv", CreatedAt: at(2024, 1, 3, 8, 0), InvoiceDate: at(2024, 1, 3, 8, 0)},
		},
		items: map[string][]models.InvoiceLineItem{},
	}

	rows, err := reports.SalesReport(context.Background(), src, time.UTC, day(2024, 1, 10), day(2024, 1, 1), "")
	if err != nil {
		t.Fatalf("inverted range must not error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result for inverted range, got %d rows", len(rows))
	}
}

func strPtr(s string) *string { return &s }
