package dto

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Request DTOs

type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,notblank,max=255"`
	Price    *decimal.Decimal `json:"price" validate:"required,decimal_gt=0,decimal_lt=100000000,decimal_places=2" swaggertype:"number"`
	Quantity *int             `json:"quantity" validate:"required,gte=0,lte=2147483647"`
}

type UpdateProductRequest struct {
	Name     string           `json:"name" validate:"required,notblank,max=255"`
	Price    *decimal.Decimal `json:"price" validate:"required,decimal_gt=0,decimal_lt=100000000,decimal_places=2" swaggertype:"number"`
	Quantity *int             `json:"quantity" validate:"required,gte=0,lte=2147483647"`
}

// Response DTOs

type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity int             `json:"quantity"`
}
