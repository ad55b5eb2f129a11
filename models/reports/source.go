package reports

import (
	"context"

	"bitbucket.org/candorwt/fieldforce_backend/models"
)

// Source is the record-source contract the aggregators read from. Every
// method returns a full snapshot of its collection at call time; no
// isolation is assumed between the reads of one report call.
type Source interface {
	AllInvoices(ctx context.Context) ([]models.Invoice, error)
	LineItems(ctx context.Context, invoiceId string) ([]models.InvoiceLineItem, error)
	AllAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
	AllSalesOrders(ctx context.Context) ([]models.SalesOrder, error)
}

// DBSource reads the snapshots from the database.
type DBSource struct{}

var _ Source = DBSource{}

func (DBSource) AllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return models.GetAllInvoices(ctx)
}

func (DBSource) LineItems(ctx context.Context, invoiceId string) ([]models.InvoiceLineItem, error) {
	return models.GetInvoiceLineItems(ctx, invoiceId)
}

func (DBSource) AllAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	return models.GetAllAttendance(ctx)
}

func (DBSource) AllSalesOrders(ctx context.Context) ([]models.SalesOrder, error) {
	return models.GetAllSalesOrders(ctx)
}
