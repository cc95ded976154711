package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leavehub/leavehub-backend-go/internal/domain/calendar"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/middleware"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Month(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// Month implements CalendarHandler.
func (h *CalendarHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	scope, viewerID, ok := parseScope(w, r)
	if !ok {
		return
	}

	cal, err := h.calendarService.MonthCalendar(r.Context(), year, month, scope, viewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cal.ToResponse())
}

// MonthlySummary implements CalendarHandler.
func (h *CalendarHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	scope, viewerID, ok := parseScope(w, r)
	if !ok {
		return
	}
	if scope == calendar.ScopeTeam {
		viewerID = ""
	}

	summary, err := h.calendarService.MonthlySummary(r.Context(), year, month, viewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// parseScope reads ?scope=, defaulting to the team view. The personal view
// takes the viewer from the access token.
func parseScope(w http.ResponseWriter, r *http.Request) (calendar.Scope, string, bool) {
	switch scope := calendar.Scope(r.URL.Query().Get("scope")); scope {
	case "", calendar.ScopeTeam:
		return calendar.ScopeTeam, "", true
	case calendar.ScopePersonal:
		identity, err := middleware.IdentityFromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid or missing token")
			return "", "", false
		}
		return calendar.ScopePersonal, identity.EmployeeID, true
	default:
		response.BadRequest(w, "scope must be personal or team", nil)
		return "", "", false
	}
}

func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return 0, 0, false
	}

	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.BadRequest(w, "month must be a number between 1 and 12", nil)
		return 0, 0, false
	}

	return year, time.Month(monthNum), true
}
