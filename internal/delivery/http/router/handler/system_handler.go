package handler

import (
	"log/slog"
	"net/http"

	"carmarket/config"
	"carmarket/internal/delivery/http/response"
	"carmarket/internal/infra/persistence/mongodb"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the service-level endpoints: root banner, health,
// schema description and store diagnostics.
type SystemHandler struct {
	cfg    *config.Config
	store  *mongodb.Store
	logger *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(cfg *config.Config, store *mongodb.Store, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// Root serves the service banner.
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": h.cfg.Env.ServiceName,
		"status":  "running",
	}, "Service is running")
}

// HealthCheck is a simple handler to check if the service is up.
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// Schema lists the stored collections for API consumers, with the fields of
// each collection alongside.
func (h *SystemHandler) Schema(c echo.Context) error {
	collections := []string{"user", "car", "order", "transaction", "notification", "reward"}

	fields := map[string][]string{
		"user": {
			"id", "role", "full_name", "email", "phone", "location",
			"avatar_url", "driver_license", "company_name", "verification_status",
		},
		"car": {
			"id", "owner_email", "title", "brand", "model", "year", "images",
			"location", "car_type", "transmission", "fuel", "mileage", "color",
			"for_rent", "for_sale", "price_per_day", "sale_price", "description", "available",
		},
		"order": {
			"id", "order_type", "car_id", "customer_email", "owner_email",
			"status", "start_date", "end_date", "pickup_location", "total_amount",
		},
		"transaction": {
			"id", "order_id", "customer_email", "owner_email", "amount",
			"currency", "type", "description",
		},
		"notification": {"id", "email", "title", "message", "read"},
		"reward":       {"id", "email", "points", "tier"},
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"collections": collections,
		"fields":      fields,
	}, "Schema retrieved successfully")
}

// maxDiagnosticCollections caps the collection names returned by Diagnostics.
const maxDiagnosticCollections = 10

// Diagnostics reports the document store connection state. It never fails
// the request: an unreachable store is part of the report, not an error.
func (h *SystemHandler) Diagnostics(c echo.Context) error {
	ctx := c.Request().Context()

	report := map[string]any{
		"database_url_set": h.cfg.Database.URL != "",
		"database_name":    h.store.Name(),
		"connected":        false,
	}

	if h.store.Configured() {
		if err := h.store.Ping(ctx); err != nil {
			report["ping_error"] = err.Error()
		} else {
			report["connected"] = true

			names, err := h.store.ListCollectionNames(ctx)
			if err != nil {
				report["collections_error"] = err.Error()
			} else {
				if len(names) > maxDiagnosticCollections {
					names = names[:maxDiagnosticCollections]
				}
				report["collections"] = names
			}
		}
	}

	return response.Success(c, http.StatusOK, report, "Diagnostics retrieved successfully")
}
