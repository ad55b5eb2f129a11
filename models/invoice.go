package models

import (
	"context"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is owned by the billing subsystem; the report core only reads it.
// CustomerSnapshot is the JSON blob captured at invoice time (contains at
// least a "name" field). InvoiceDate is the business date, CreatedAt is the
// ingestion timestamp; the two are windowed independently by reports.
type Invoice struct {
	ID               string          `gorm:"primary_key;size:36" json:"id"`
	InvoiceNo        string          `gorm:"size:50;index" json:"invoice_no"`
	AgentId          string          `gorm:"size:36;index;not null" json:"agent_id"`
	AgentName        string          `gorm:"size:255" json:"agent_name"`
	CustomerSnapshot string          `gorm:"type:text" json:"customer_snapshot"`
	Total            decimal.Decimal `gorm:"type:decimal(18,2)" json:"total"`
	Status           string          `gorm:"size:50" json:"status"`
	InvoiceDate      time.Time       `json:"invoice_date"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

type InvoiceLineItem struct {
	ID        int64  `gorm:"primary_key" json:"id"`
	InvoiceId string `gorm:"size:36;index;not null" json:"invoice_id"`
	Name      string `gorm:"size:255" json:"name"`
}

func (inv *Invoice) BeforeCreate(tx *gorm.DB) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	return nil
}

// GetAllInvoices returns the full invoice snapshot, unordered.
func GetAllInvoices(ctx context.Context) ([]Invoice, error) {

	db := config.GetDB()
	var invoices []Invoice
	if err := db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoiceLineItems returns the line items belonging to one invoice.
func GetInvoiceLineItems(ctx context.Context, invoiceId string) ([]InvoiceLineItem, error) {

	db := config.GetDB()
	var items []InvoiceLineItem
	if err := db.WithContext(ctx).Where("invoice_id = ?", invoiceId).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
