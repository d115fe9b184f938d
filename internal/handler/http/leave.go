package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/openleave/leave-backend-go/internal/domain/leave"
	"github.com/openleave/leave-backend-go/internal/handler/http/middleware"
	"github.com/openleave/leave-backend-go/internal/handler/http/response"
	leaveservice "github.com/openleave/leave-backend-go/internal/service/leave"
	reportservice "github.com/openleave/leave-backend-go/internal/service/report"
)

const maxUploadBytes = 32 << 20

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	AdminCreateRequest(w http.ResponseWriter, r *http.Request)
	UpdateDetails(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
	CompanyCalendar(w http.ResponseWriter, r *http.Request)
	StatisticsSummary(w http.ResponseWriter, r *http.Request)
	StatisticsExport(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService  leaveservice.LeaveService
	reportService reportservice.ReportService
}

func NewLeaveHandler(leaveService leaveservice.LeaveService, reportService reportservice.ReportService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService:  leaveService,
		reportService: reportService,
	}
}

func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	var filter leave.LeaveRequestFilter

	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	requests, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.EmployeeFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	requests, err := h.leaveService.ListMine(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// CreateRequest accepts multipart form data: a JSON payload in the "data"
// field and any number of files in "attachments".
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.EmployeeFromRequest(r)
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		slog.Error("CreateRequest multipart parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req leave.CreateLeaveRequestRequest
	data := r.FormValue("data")
	if data == "" {
		response.BadRequest(w, "Missing data field", nil)
		return
	}
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = identity.EmployeeID
	req.EmployeeName = identity.Name
	req.Department = identity.Department
	if r.MultipartForm != nil {
		req.Files = r.MultipartForm.File["attachments"]
	}

	created, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}

func (h *LeaveHandlerImpl) AdminCreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.AdminCreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdminCreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.AdminCreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", created)
}

func (h *LeaveHandlerImpl) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveDetailsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDetails decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.leaveService.UpdateDetails(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", updated)
}

func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ApprovedBy = middleware.AdminID(r)

	updated, err := h.leaveService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request status updated successfully", updated)
}

func (h *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

func (h *LeaveHandlerImpl) CompanyCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year := 0
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	var month *int
	if v := q.Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		month = &parsed
	}

	days, err := h.leaveService.CompanyCalendar(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

func parseStatisticsQuery(r *http.Request) (leaveservice.StatisticsQuery, bool) {
	var query leaveservice.StatisticsQuery

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return query, false
		}
		query.Year = parsed
	}
	if v := q.Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return query, false
		}
		query.Month = &parsed
	}
	if v := q.Get("quarter"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 4 {
			return query, false
		}
		query.Quarter = &parsed
	}
	if v := q.Get("employee_id"); v != "" {
		query.EmployeeID = &v
	}

	return query, true
}

func (h *LeaveHandlerImpl) StatisticsSummary(w http.ResponseWriter, r *http.Request) {
	query, ok := parseStatisticsQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid statistics query", nil)
		return
	}

	stats, err := h.leaveService.StatisticsSummary(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *LeaveHandlerImpl) StatisticsExport(w http.ResponseWriter, r *http.Request) {
	query, ok := parseStatisticsQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid statistics query", nil)
		return
	}

	stats, err := h.leaveService.StatisticsSummary(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	period := query.Window()

	pdf, err := h.reportService.StatisticsPDF(stats, period)
	if err != nil {
		slog.Error("StatisticsExport render error", "error", err)
		response.InternalServerError(w, "Failed to render statistics export")
		return
	}

	filename := "leave-statistics-all-time.pdf"
	if period != nil {
		filename = "leave-statistics-" + period.Start.Format("2006-01-02") + ".pdf"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
