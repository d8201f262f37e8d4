package handler

import (
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
)

type MapHandler struct {
	mapUsecase usecase.MapUsecase
}

func NewMapHandler(mapUsecase usecase.MapUsecase) *MapHandler {
	return &MapHandler{mapUsecase: mapUsecase}
}

// GetMarkers serves the static demo marker set for the map view.
func (h *MapHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	markers := h.mapUsecase.GetMarkers(r.Context())
	response.Success(w, http.StatusOK, "Map markers retrieved successfully", markers)
}
