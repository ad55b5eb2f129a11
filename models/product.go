package models

import (
	"context"
	"errors"
	"strings"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64           `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Sku         string          `gorm:"size:100;index" json:"sku"`
	Category    string          `gorm:"size:100" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	ImageUrl    string          `gorm:"size:500" json:"image_url"`
	Active      *bool           `gorm:"default:true;not null" json:"active"`
}

type NewProduct struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {

	db := config.GetDB()

	product := Product{
		Name:        input.Name,
		Sku:         utils.MakeSku(input.Name),
		Category:    "GENERAL",
		Price:       input.Price,
		Description: input.Description,
		Active:      utils.NewTrue(),
	}

	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func GetProduct(ctx context.Context, id int64) (*Product, error) {

	db := config.GetDB()
	var product Product
	if err := db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &product, nil
}

// SearchProducts filters on name or SKU, case-insensitive. Blank search returns all.
func SearchProducts(ctx context.Context, search string) ([]Product, error) {

	db := config.GetDB()
	var products []Product
	if err := db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return products, nil
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Sku), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func UpdateProduct(ctx context.Context, id int64, input *NewProduct) (*Product, error) {

	db := config.GetDB()

	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description

	if err := db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func UpdateProductImage(ctx context.Context, id int64, imageUrl string) (*Product, error) {

	db := config.GetDB()

	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ImageUrl = imageUrl
	if err := db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func DeleteProduct(ctx context.Context, id int64) error {

	db := config.GetDB()

	product, err := GetProduct(ctx, id)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(product).Error
}
