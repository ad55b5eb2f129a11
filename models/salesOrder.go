package models

import (
	"context"
	"strings"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesOrder struct {
	ID           string          `gorm:"primary_key;size:36" json:"id"`
	OrderNumber  string          `gorm:"size:50;index" json:"order_number"`
	CustomerName string          `gorm:"size:255" json:"customer_name"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Status       string          `gorm:"size:50" json:"status"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

func (o *SalesOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// GetAllSalesOrders returns the full sales-order snapshot, unordered.
func GetAllSalesOrders(ctx context.Context) ([]SalesOrder, error) {

	db := config.GetDB()
	var orders []SalesOrder
	if err := db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SearchSalesOrders filters on order number or customer name, case-insensitive.
func SearchSalesOrders(ctx context.Context, search string) ([]SalesOrder, error) {

	orders, err := GetAllSalesOrders(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return orders, nil
	}

	matched := make([]SalesOrder, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.OrderNumber), term) ||
			strings.Contains(strings.ToLower(o.CustomerName), term) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
