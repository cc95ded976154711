package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leavehub/leavehub-backend-go/internal/domain/notification"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/middleware"
	"github.com/leavehub/leavehub-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	UnreadCounts(w http.ResponseWriter, r *http.Request)
	MarkViewed(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// UnreadCounts implements NotificationHandler.
func (h *NotificationHandlerImpl) UnreadCounts(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	counts, err := h.notificationService.UnreadCounts(r.Context(), identity.EmployeeID, identity.Role)
	if err != nil {
		slog.Error("UnreadCounts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// MarkViewed implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkViewed(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("MarkViewed decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.notificationService.MarkViewed(r.Context(), identity.EmployeeID, notification.Category(body.Category)); err != nil {
		slog.Error("MarkViewed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked as viewed", nil)
}
