package http

import (
	"net/http"

	"github.com/leavehub/leavehub-backend-go/internal/domain/attendance"
	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	TodayAttendance(w http.ResponseWriter, r *http.Request)
	DepartmentAttendance(w http.ResponseWriter, r *http.Request)
	TomorrowHoliday(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportHandler(attendanceService attendance.AttendanceService) ReportHandler {
	return &ReportHandlerImpl{attendanceService: attendanceService}
}

// TodayAttendance implements ReportHandler.
func (h *ReportHandlerImpl) TodayAttendance(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.TodayReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// DepartmentAttendance implements ReportHandler.
func (h *ReportHandlerImpl) DepartmentAttendance(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department == "" {
		response.BadRequest(w, "department query parameter is required", nil)
		return
	}

	report, err := h.attendanceService.DepartmentReport(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// TomorrowHoliday implements ReportHandler.
func (h *ReportHandlerImpl) TomorrowHoliday(w http.ResponseWriter, r *http.Request) {
	hol, err := h.attendanceService.TomorrowHoliday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if hol == nil {
		response.Success(w, nil)
		return
	}
	response.Success(w, holiday.ToResponse(*hol))
}
