package repository

import (
	"context"
	"sync"

	"product-api/internal/domain/entity"
	domainRepo "product-api/internal/domain/repository"
)

// memoryProductRepository keeps products in insertion order. It backs the
// memory DB driver and the handler tests.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product
	nextID   int64
}

func NewMemoryProductRepository() domainRepo.ProductRepository {
	return &memoryProductRepository{nextID: 1}
}

func (r *memoryProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entity.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *memoryProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		product := r.products[i]
		return &product, nil
	}
	return nil, nil
}

func (r *memoryProductRepository) Save(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID != 0 {
		if i := r.indexOf(product.ID); i >= 0 {
			r.products[i] = *product
			return nil
		}
	} else {
		product.ID = r.nextID
	}

	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(product.ID); i >= 0 {
		r.products = append(r.products[:i], r.products[i+1:]...)
	}
	return nil
}

func (r *memoryProductRepository) indexOf(id int64) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
