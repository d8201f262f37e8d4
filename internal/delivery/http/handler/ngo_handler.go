package handler

import (
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
)

type NGOHandler struct {
	ngoUsecase usecase.NGOUsecase
}

func NewNGOHandler(ngoUsecase usecase.NGOUsecase) *NGOHandler {
	return &NGOHandler{ngoUsecase: ngoUsecase}
}

func (h *NGOHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.ngoUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load NGO dashboard")
		return
	}

	response.Success(w, http.StatusOK, "NGO dashboard retrieved successfully", dashboard)
}
