package transport

import (
	"net/http"
	"strconv"

	"stockroom/internal/middleware"
	"stockroom/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateVendorRequest represents the vendor creation payload
type CreateVendorRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// VendorHandler handles HTTP requests for vendor operations
type VendorHandler struct {
	vendorService service.VendorService
	logger        *zap.Logger
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService service.VendorService, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		logger:        logger,
	}
}

// RegisterRoutes registers all vendor routes. Reads are public; writes sit
// behind the auth middleware.
func (h *VendorHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/vendors", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List returns all vendors, unfiltered and unpaginated
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list vendors", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not fetch vendors")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, vendors)
}

// Create adds a vendor. Duplicate names are allowed; only absence of a name
// is rejected.
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Vendor validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Vendor name is required")
		return
	}

	vendor, err := h.vendorService.Add(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("Failed to add vendor", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not add vendor")
		return
	}

	h.logger.Info("Vendor added", zap.Int64("vendor_id", vendor.ID))
	middleware.RespondWithMessage(w, http.StatusOK, "Vendor added successfully")
}

// Delete removes a vendor by id; the store cascades onto its products.
// A nonexistent id still succeeds with zero rows affected.
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	if err := h.vendorService.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete vendor", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Could not delete vendor")
		return
	}

	h.logger.Info("Vendor deleted", zap.Int64("vendor_id", id))
	middleware.RespondWithMessage(w, http.StatusOK, "Vendor deleted successfully")
}
