package reports

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/models"
)

// dayWindow returns the half-open instant window [from 00:00, to+1d 00:00)
// in loc. An inverted range yields an empty window rather than an error.
func dayWindow(from time.Time, to time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return start, end
}

func inWindow(t time.Time, start time.Time, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

type customerSnapshot struct {
	Name *string `json:"name"`
}

// customerNameFromSnapshot parses the invoice's customer snapshot blob and
// reads its name field. Absent or malformed snapshots resolve to nil, never
// to an error.
func customerNameFromSnapshot(blob string) *string {
	if strings.TrimSpace(blob) == "" {
		return nil
	}
	var snapshot customerSnapshot
	if err := json.Unmarshal([]byte(blob), &snapshot); err != nil {
		return nil
	}
	return snapshot.Name
}

// SalesReport projects invoices created within [from, to] (inclusive days in
// loc) into report rows, one per line item, with a single nil-product row for
// invoices that have no line items. agentId filters exactly when non-blank.
func SalesReport(ctx context.Context, src Source, loc *time.Location, from time.Time, to time.Time, agentId string) ([]SalesReportRow, error) {

	start, end := dayWindow(from, to, loc)
	agentId = strings.TrimSpace(agentId)

	invoices, err := src.AllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]SalesReportRow, 0, len(invoices))
	for _, inv := range invoices {
		if !inWindow(inv.CreatedAt, start, end) {
			continue
		}
		if agentId != "" && agentId != inv.AgentId {
			continue
		}

		items, err := src.LineItems(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			rows = append(rows, toSalesRow(inv, nil, loc))
			continue
		}
		for i := range items {
			rows = append(rows, toSalesRow(inv, &items[i], loc))
		}
	}
	return rows, nil
}

func toSalesRow(inv models.Invoice, item *models.InvoiceLineItem, loc *time.Location) SalesReportRow {
	var productName *string
	if item != nil {
		productName = &item.Name
	}
	return SalesReportRow{
		InvoiceId:    inv.ID,
		InvoiceNo:    inv.InvoiceNo,
		AgentId:      inv.AgentId,
		AgentName:    inv.AgentName,
		CustomerName: customerNameFromSnapshot(inv.CustomerSnapshot),
		ProductName:  productName,
		Total:        inv.Total,
		Status:       inv.Status,
		InvoiceDate:  DateOf(inv.InvoiceDate, loc),
	}
}
