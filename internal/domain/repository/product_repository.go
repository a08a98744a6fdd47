package repository

import (
	"context"

	"product-api/internal/domain/entity"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	// FindByID returns (nil, nil) when no row has the given id.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// Save inserts the product when its ID is zero and updates it otherwise.
	// On insert the store-assigned ID is written back to product.ID.
	Save(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, product *entity.Product) error
}
