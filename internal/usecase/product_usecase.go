package usecase

import (
	"context"

	"product-api/internal/converter"
	"product-api/internal/delivery/dto"
	"product-api/internal/domain/entity"
	"product-api/internal/domain/repository"
	"product-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

const productResource = "Product"

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}

	if err := u.productRepo.Save(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	u.log.WithField("product_id", product.ID).Info("Product created")
	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all products: %+v", err)
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := u.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

// Update overwrites name, price and quantity of an existing product. The id is
// never changed.
func (u *productUsecase) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := u.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = *req.Price
	product.Quantity = *req.Quantity

	if err := u.productRepo.Save(ctx, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Delete(ctx context.Context, id int64) error {
	product, err := u.findProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, product); err != nil {
		u.log.Warnf("Failed delete product: %+v", err)
		return err
	}

	u.log.WithField("product_id", id).Info("Product deleted")
	return nil
}

func (u *productUsecase) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound(productResource, "id", id)
	}
	return product, nil
}
