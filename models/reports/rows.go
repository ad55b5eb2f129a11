package reports

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date in the report time zone.
type Date time.Time

func DateOf(t time.Time, loc *time.Location) Date {
	local := t.In(loc)
	return Date(time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc))
}

func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

type SalesReportRow struct {
	InvoiceId    string          `json:"invoice_id"`
	InvoiceNo    string          `json:"invoice_no"`
	AgentId      string          `json:"agent_id"`
	AgentName    string          `json:"agent_name"`
	CustomerName *string         `json:"customer_name"`
	ProductName  *string         `json:"product_name"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	InvoiceDate  Date            `json:"invoice_date"`
}

type AttendanceReportRow struct {
	AgentId              string     `json:"agent_id"`
	AgentName            string     `json:"agent_name"`
	Date                 Date       `json:"date"`
	CheckInTime          time.Time  `json:"check_in_time"`
	CheckOutTime         *time.Time `json:"check_out_time"`
	TotalDurationMinutes *int64     `json:"total_duration_minutes"`
	Status               string     `json:"status"`
}

type OrdersReportRow struct {
	OrderId      string          `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedDate  Date            `json:"created_date"`
}
