package handler

import (
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

func (h *AdminHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.adminUsecase.GetOverview(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load admin overview")
		return
	}

	response.Success(w, http.StatusOK, "Admin overview retrieved successfully", overview)
}
