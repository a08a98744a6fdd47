package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"product-api/internal/delivery/dto"
	"product-api/internal/usecase"
	"product-api/pkg/apperror"
	"product-api/pkg/response"
	"product-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
		log:            log,
	}
}

// Create handles product creation
// @Summary Add a new product
// @Description Creates a new product entry in the database.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := h.decode(w, r, &req); err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	response.JSON(w, http.StatusCreated, product)
}

// GetAll handles listing products
// @Summary Get all products
// @Description Retrieves a list of all available products.
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetByID handles getting a product by ID
// @Summary Get a product by ID
// @Description Retrieves a specific product using its unique ID.
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Update handles product update
// @Summary Update an existing product
// @Description Updates the details of a product specified by its ID.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := h.decode(w, r, &req); err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Delete handles product deletion
// @Summary Delete a product by ID
// @Description Removes a product from the database using its ID.
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		response.HandleError(w, r, h.log, err)
		return
	}

	response.NoContent(w)
}

// decode reads a single JSON payload into dst and validates it.
func (h *ProductHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewBadRequest("Invalid request body", err)
	}

	return h.validator.Validate(dst)
}

func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperror.NewBadRequest("Invalid product ID", err)
	}
	return id, nil
}
