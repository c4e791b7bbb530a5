package adaptor

import (
	"net/http"

	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PackageHandler struct {
	catalog  usecase.CatalogService
	purchase usecase.PurchaseService
	log      *zap.Logger
}

func NewPackageHandler(catalog usecase.CatalogService, purchase usecase.PurchaseService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		catalog:  catalog,
		purchase: purchase,
		log:      log.With(zap.String("handler", "package")),
	}
}

// ListPackages handles GET /api/packages (public)
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.ListPackages(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackage handles GET /api/packages/{id}?size= (public). The size query
// selects the price column for the customer's car.
func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	packageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid package ID", nil)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		utils.ResponseBadRequest(w, "size query parameter is required", nil)
		return
	}

	priced, err := h.catalog.GetPackageWithPrice(r.Context(), packageID, size)
	if err != nil {
		handleServiceError(h.log, w, err, "get package")
		return
	}

	utils.ResponseSuccess(w, "success", priced)
}

// ListUserPackages handles GET /api/user/packages (protected)
func (h *PackageHandler) ListUserPackages(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ups, err := h.purchase.ListUserPackages(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list user packages")
		return
	}

	utils.ResponseSuccess(w, "success", ups)
}
