package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/middleware"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	DashboardStats(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = identity.EmployeeID

	created, err := h.requestService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", created)
}

// ListMine implements RequestHandler.
func (h *RequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListMine(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListAll implements RequestHandler.
func (h *RequestHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements RequestHandler.
func (h *RequestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListPendingForManager(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements RequestHandler.
func (h *RequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	approved, err := h.requestService.Approve(r.Context(), requestID, identity.Role, identity.EmployeeID)
	if err != nil {
		slog.Error("Approve request service error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request approved", approved)
}

// Reject implements RequestHandler.
func (h *RequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Reject request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	requestID := chi.URLParam(r, "id")
	rejected, err := h.requestService.Reject(r.Context(), requestID, identity.Role, identity.EmployeeID, body.Reason)
	if err != nil {
		slog.Error("Reject request service error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request rejected", rejected)
}

// DashboardStats implements RequestHandler.
func (h *RequestHandlerImpl) DashboardStats(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.requestService.DashboardStats(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
