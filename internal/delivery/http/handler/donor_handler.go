package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
	"github.com/Paarth01/lifelink-ui-connect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

func (h *DonorHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.donorUsecase.GetDashboard(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to load donor dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor dashboard retrieved successfully", dashboard)
}

func (h *DonorHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.donorUsecase.UpdateAvailability(r.Context(), *req.Availability); err != nil {
		response.InternalServerError(w, "Failed to update availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", map[string]bool{
		"availability": *req.Availability,
	})
}

func (h *DonorHandler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	donation, err := h.donorUsecase.RespondToRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Request not found")
		case usecase.ErrRespondFailed:
			response.InternalServerError(w, "Failed to respond to request")
		default:
			response.InternalServerError(w, "Failed to respond to request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Response recorded successfully", donation)
}
