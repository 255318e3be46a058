package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/delivery/http/middleware"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	"github.com/SamarthX9/hospital-management/internal/usecase"
	"github.com/SamarthX9/hospital-management/pkg/response"
	"github.com/SamarthX9/hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) CreateWindow(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case entity.ErrInvalidDate, entity.ErrInvalidTime, entity.ErrStartInPast,
			entity.ErrRangeTooFar, entity.ErrEndBeforeStart, entity.ErrEndTimeNotAfterStart:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create availability")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Availability created successfully", window)
}

func (h *AvailabilityHandler) ListMyWindows(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	windows, err := h.availabilityUsecase.List(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", windows)
}

func (h *AvailabilityHandler) DeleteWindow(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	windowID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid window ID", nil)
		return
	}

	if err := h.availabilityUsecase.Delete(r.Context(), doctorID, windowID); err != nil {
		switch err {
		case usecase.ErrWindowNotFound:
			response.NotFound(w, "Availability window not found")
		case usecase.ErrNotWindowOwner:
			response.Forbidden(w, "Availability window does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted successfully", nil)
}
