package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationUsecase struct {
	listFn func(ctx context.Context, email string) ([]*entity.Notification, error)
}

func (s *stubNotificationUsecase) ListNotifications(ctx context.Context, email string) ([]*entity.Notification, error) {
	return s.listFn(ctx, email)
}

func TestNotificationHandler_ListNotifications_EmptyEmailRejected(t *testing.T) {
	uc := &stubNotificationUsecase{
		listFn: func(ctx context.Context, email string) ([]*entity.Notification, error) {
			t.Fatal("usecase must not be called without an email")
			return nil, nil
		},
	}
	h := &NotificationHandler{uc: uc, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListNotifications(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestNotificationHandler_ListNotifications_ScopedToEmail(t *testing.T) {
	var got string
	uc := &stubNotificationUsecase{
		listFn: func(ctx context.Context, email string) ([]*entity.Notification, error) {
			got = email
			return []*entity.Notification{{ID: "n1", Email: email, Title: "New order"}}, nil
		},
	}
	h := &NotificationHandler{uc: uc, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications?email=x@example.com", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListNotifications(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "x@example.com", got)
	assert.Contains(t, rec.Body.String(), "New order")
}
