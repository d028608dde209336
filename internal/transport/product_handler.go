package transport

import (
	"errors"
	"net/http"
	"strconv"

	"stockroom/internal/domain"
	"stockroom/internal/middleware"
	"stockroom/internal/repository"
	"stockroom/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductRequest is the payload for both create and full-replace update.
// Numeric fields are pointers so that a present zero (a sold-out quantity,
// an unboxed item) is distinguishable from an absent field; only absence
// fails validation.
type ProductRequest struct {
	VendorID *int64   `json:"vendor_id" validate:"required"`
	Name     string   `json:"name" validate:"required,max=100"`
	Category *string  `json:"category" validate:"omitempty,max=50"`
	Quantity *int     `json:"quantity" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Contains *int     `json:"contains" validate:"required"`
	Box      *int     `json:"box" validate:"required"`
}

func (req *ProductRequest) toDomain(id int64) *domain.Product {
	return &domain.Product{
		ID:       id,
		VendorID: *req.VendorID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: *req.Quantity,
		Price:    *req.Price,
		Contains: *req.Contains,
		Box:      *req.Box,
	}
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes. The listing is public; every
// mutation requires a verified token.
func (h *ProductHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List returns all products joined with their vendor's name
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not fetch products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Create adds a product under an existing vendor
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product := req.toDomain(0)
	if err := h.productService.Add(r.Context(), product); err != nil {
		if errors.Is(err, repository.ErrVendorMissing) {
			h.logger.Debug("Product references missing vendor", zap.Int64("vendor_id", product.VendorID))
			middleware.RespondWithError(w, http.StatusBadRequest, "Vendor does not exist")
			return
		}

		h.logger.Error("Failed to add product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not add product")
		return
	}

	h.logger.Info("Product added", zap.Int64("product_id", product.ID))
	middleware.RespondWithMessage(w, http.StatusOK, "Product added successfully")
}

// Update replaces every mutable field of a product by id. Updating an id
// that does not exist affects zero rows and still reports success.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	if err := h.productService.Replace(r.Context(), req.toDomain(id)); err != nil {
		if errors.Is(err, repository.ErrVendorMissing) {
			middleware.RespondWithError(w, http.StatusBadRequest, "Vendor does not exist")
			return
		}

		h.logger.Error("Failed to update product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not update product")
		return
	}

	h.logger.Info("Product updated", zap.Int64("product_id", id))
	middleware.RespondWithMessage(w, http.StatusOK, "Product updated successfully")
}

// Delete removes a product by id with the same silent-success semantics
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.productService.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not delete product")
		return
	}

	h.logger.Info("Product deleted", zap.Int64("product_id", id))
	middleware.RespondWithMessage(w, http.StatusOK, "Product deleted successfully")
}

func (h *ProductHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (*ProductRequest, bool) {
	var req ProductRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return nil, false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	return &req, true
}
