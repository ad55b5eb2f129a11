package reports

import (
	"context"
	"strings"
	"time"
)

// OrdersReport projects sales orders created within [from, to] (inclusive
// days in loc). status filters case-insensitively when non-blank.
func OrdersReport(ctx context.Context, src Source, loc *time.Location, from time.Time, to time.Time, status string) ([]OrdersReportRow, error) {

	start, end := dayWindow(from, to, loc)
	status = strings.TrimSpace(status)

	orders, err := src.AllSalesOrders(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]OrdersReportRow, 0, len(orders))
	for _, o := range orders {
		if !inWindow(o.CreatedAt, start, end) {
			continue
		}
		if status != "" && !strings.EqualFold(status, o.Status) {
			continue
		}

		rows = append(rows, OrdersReportRow{
			OrderId:      o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Amount:       o.Amount,
			Status:       o.Status,
			CreatedDate:  DateOf(o.CreatedAt, loc),
		})
	}
	return rows, nil
}
