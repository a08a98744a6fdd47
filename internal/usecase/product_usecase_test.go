package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"product-api/internal/delivery/dto"
	"product-api/internal/domain/entity"
	domainRepo "product-api/internal/domain/repository"
	"product-api/internal/repository"
	"product-api/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// countingRepository wraps a repository and records mutating calls.
type countingRepository struct {
	domainRepo.ProductRepository
	saves   int
	deletes int
	findErr error
	saveErr error
}

func (r *countingRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.ProductRepository.FindByID(ctx, id)
}

func (r *countingRepository) Save(ctx context.Context, product *entity.Product) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.ProductRepository.Save(ctx, product)
}

func (r *countingRepository) Delete(ctx context.Context, product *entity.Product) error {
	r.deletes++
	return r.ProductRepository.Delete(ctx, product)
}

func newTestUsecase() (ProductUsecase, *countingRepository) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := &countingRepository{ProductRepository: repository.NewMemoryProductRepository()}
	return NewProductUsecase(log, repo), repo
}

func createRequest(name, price string, quantity int) *dto.CreateProductRequest {
	p := decimal.RequireFromString(price)
	return &dto.CreateProductRequest{Name: name, Price: &p, Quantity: &quantity}
}

func updateRequest(name, price string, quantity int) *dto.UpdateProductRequest {
	p := decimal.RequireFromString(price)
	return &dto.UpdateProductRequest{Name: name, Price: &p, Quantity: &quantity}
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *apperror.NotFoundError, got %v", err)
	}
}

func TestProductUsecase_CreateAndGet(t *testing.T) {
	uc, _ := newTestUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest("Laptop", "1500", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected id to be assigned")
	}

	got, err := uc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Laptop" || !got.Price.Equal(decimal.NewFromInt(1500)) || got.Quantity != 1 {
		t.Errorf("unexpected product %+v", got)
	}
}

func TestProductUsecase_GetByID_NotFound(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.GetByID(context.Background(), 99999)
	assertNotFound(t, err)

	if err.Error() != "Product not found with id : '99999'" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestProductUsecase_GetAll(t *testing.T) {
	uc, _ := newTestUsecase()
	ctx := context.Background()

	empty, err := uc.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}

	names := []string{"Phone", "Tablet", "Watch"}
	for _, n := range names {
		if _, err := uc.Create(ctx, createRequest(n, "10", 1)); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := uc.GetAll(ctx)
	if len(all) != len(names) {
		t.Fatalf("expected %d products, got %d", len(names), len(all))
	}
	for i, n := range names {
		if all[i].Name != n {
			t.Errorf("position %d: expected %q, got %q", i, n, all[i].Name)
		}
	}
}

func TestProductUsecase_Update(t *testing.T) {
	uc, _ := newTestUsecase()
	ctx := context.Background()

	created, _ := uc.Create(ctx, createRequest("Old Name", "100", 1))

	updated, err := uc.Update(ctx, created.ID, updateRequest("New Name", "120.50", 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected id %d to be preserved, got %d", created.ID, updated.ID)
	}

	got, _ := uc.GetByID(ctx, created.ID)
	if got.Name != "New Name" || !got.Price.Equal(decimal.RequireFromString("120.5")) || got.Quantity != 7 {
		t.Errorf("expected overwritten fields, got %+v", got)
	}
}

func TestProductUsecase_Update_NotFoundDoesNotSave(t *testing.T) {
	uc, repo := newTestUsecase()

	_, err := uc.Update(context.Background(), 42, updateRequest("X", "1", 1))
	assertNotFound(t, err)

	if repo.saves != 0 {
		t.Errorf("expected no save for missing product, got %d", repo.saves)
	}
}

func TestProductUsecase_Delete(t *testing.T) {
	uc, repo := newTestUsecase()
	ctx := context.Background()

	created, _ := uc.Create(ctx, createRequest("Lamp", "30", 2))

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := uc.GetByID(ctx, created.ID)
	assertNotFound(t, err)

	// A second delete is NotFound rather than a silent success.
	assertNotFound(t, uc.Delete(ctx, created.ID))
	if repo.deletes != 1 {
		t.Errorf("expected exactly one delete against the store, got %d", repo.deletes)
	}
}

func TestProductUsecase_StoreErrorsPropagate(t *testing.T) {
	uc, repo := newTestUsecase()
	ctx := context.Background()

	storeErr := errors.New("connection refused")

	repo.saveErr = storeErr
	if _, err := uc.Create(ctx, createRequest("A", "1", 1)); !errors.Is(err, storeErr) {
		t.Errorf("expected store error from Create, got %v", err)
	}

	repo.saveErr = nil
	repo.findErr = storeErr
	if _, err := uc.GetByID(ctx, 1); !errors.Is(err, storeErr) {
		t.Errorf("expected store error from GetByID, got %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, storeErr) {
		t.Errorf("expected store error from Delete, got %v", err)
	}
}
