package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openleave/leave-backend-go/internal/domain/master/department"
	"github.com/openleave/leave-backend-go/internal/domain/master/halfday"
	"github.com/openleave/leave-backend-go/internal/domain/master/position"
	"github.com/openleave/leave-backend-go/internal/handler/http/response"
	masterservice "github.com/openleave/leave-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListActiveDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	ListPositions(w http.ResponseWriter, r *http.Request)
	ListActivePositions(w http.ResponseWriter, r *http.Request)
	GetPosition(w http.ResponseWriter, r *http.Request)
	CreatePosition(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)

	ListHalfDayOptions(w http.ResponseWriter, r *http.Request)
	CreateHalfDayOption(w http.ResponseWriter, r *http.Request)
	UpdateHalfDayOption(w http.ResponseWriter, r *http.Request)
	DeleteHalfDayOption(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService masterservice.MasterService
}

func NewMasterHandler(masterService masterservice.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context(), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *MasterHandlerImpl) ListActiveDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context(), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *MasterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dept, err := h.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dept)
}

func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	dept, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", dept)
}

func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	dept, err := h.masterService.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", dept)
}

func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.masterService.DeleteDepartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

func (h *MasterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context(), false)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, positions)
}

func (h *MasterHandlerImpl) ListActivePositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context(), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, positions)
}

func (h *MasterHandlerImpl) GetPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pos, err := h.masterService.GetPosition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, pos)
}

func (h *MasterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.CreatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	pos, err := h.masterService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", pos)
}

func (h *MasterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.UpdatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePosition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	pos, err := h.masterService.UpdatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", pos)
}

func (h *MasterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.masterService.DeletePosition(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

func (h *MasterHandlerImpl) ListHalfDayOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.masterService.ListHalfDayOptions(r.Context(), true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, options)
}

func (h *MasterHandlerImpl) CreateHalfDayOption(w http.ResponseWriter, r *http.Request) {
	var req halfday.CreateHalfDayOptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHalfDayOption decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	opt, err := h.masterService.CreateHalfDayOption(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Half day option created successfully", opt)
}

func (h *MasterHandlerImpl) UpdateHalfDayOption(w http.ResponseWriter, r *http.Request) {
	var req halfday.UpdateHalfDayOptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateHalfDayOption decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	opt, err := h.masterService.UpdateHalfDayOption(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Half day option updated successfully", opt)
}

func (h *MasterHandlerImpl) DeleteHalfDayOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.masterService.DeleteHalfDayOption(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Half day option deleted successfully", nil)
}
