package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderUsecase struct {
	createFn     func(ctx context.Context, order *entity.Order) (*entity.Order, error)
	listFn       func(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error)
	updateStatus func(ctx context.Context, id string, status entity.OrderStatus) error
}

func (s *stubOrderUsecase) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	return s.createFn(ctx, order)
}

func (s *stubOrderUsecase) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	return s.listFn(ctx, filter)
}

func (s *stubOrderUsecase) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return s.updateStatus(ctx, id, status)
}

func newOrderListContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_ListOrders_EmailWithoutRoleReturnsAll(t *testing.T) {
	var got repository.OrderFilter
	uc := &stubOrderUsecase{
		listFn: func(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
			got = filter
			return []*entity.Order{}, nil
		},
	}
	h := &OrderHandler{uc: uc, logger: slog.Default()}

	c, rec := newOrderListContext(t, "/orders?email=x@example.com")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repository.OrderFilter{}, got)
}

func TestOrderHandler_ListOrders_EmailAndRoleNarrow(t *testing.T) {
	var got repository.OrderFilter
	uc := &stubOrderUsecase{
		listFn: func(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
			got = filter
			return []*entity.Order{}, nil
		},
	}
	h := &OrderHandler{uc: uc, logger: slog.Default()}

	c, rec := newOrderListContext(t, "/orders?email=x@example.com&role=owner")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repository.OrderFilter{Email: "x@example.com", Role: entity.RoleOwner}, got)
}

func TestOrderHandler_ListOrders_RoleWithoutEmailReturnsAll(t *testing.T) {
	var got repository.OrderFilter
	uc := &stubOrderUsecase{
		listFn: func(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
			got = filter
			return []*entity.Order{}, nil
		},
	}
	h := &OrderHandler{uc: uc, logger: slog.Default()}

	c, rec := newOrderListContext(t, "/orders?role=customer")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repository.OrderFilter{}, got)
}

func TestOrderHandler_ListOrders_UnknownRoleRejected(t *testing.T) {
	uc := &stubOrderUsecase{
		listFn: func(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
			t.Fatal("usecase must not be called for an unknown role")
			return nil, nil
		},
	}
	h := &OrderHandler{uc: uc, logger: slog.Default()}

	c, rec := newOrderListContext(t, "/orders?email=x@example.com&role=admin")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
