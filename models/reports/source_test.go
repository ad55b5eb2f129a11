package reports_test

import (
	"context"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/models/reports"
)

// memSource serves fixed snapshots for aggregator tests.
type memSource struct {
	invoices   []models.Invoice
	items      map[string][]models.InvoiceLineItem
	attendance []models.AttendanceRecord
	orders     []models.SalesOrder
}

var _ reports.Source = (*memSource)(nil)

func (s *memSource) AllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.invoices, nil
}

func (s *memSource) LineItems(ctx context.Context, invoiceId string) ([]models.InvoiceLineItem, error) {
	return s.items[invoiceId], nil
}

func (s *memSource) AllAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	return s.attendance, nil
}

func (s *memSource) AllSalesOrders(ctx context.Context) ([]models.SalesOrder, error) {
	return s.orders, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, d int, hour int, min int) time.Time {
	return time.Date(year, month, d, hour, min, 0, 0, time.UTC)
}
