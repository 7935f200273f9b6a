package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the notification feed handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNotifications handles the notification feed request for an email. The
// email is required: the feed is always scoped to one recipient.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "email is required")
	}

	notifs, err := h.uc.ListNotifications(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifs, "Notifications retrieved successfully")
}
