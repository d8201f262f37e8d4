package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
	"github.com/Paarth01/lifelink-ui-connect/pkg/validator"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.hospitalUsecase.GetDashboard(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to load hospital dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital dashboard retrieved successfully", dashboard)
}

func (h *HospitalHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.hospitalUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrCreateRequestFailed:
			response.InternalServerError(w, "Failed to create request")
		default:
			response.InternalServerError(w, "Failed to create request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Request created successfully", result)
}
