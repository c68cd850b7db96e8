package http

import (
	"net/http"
	"time"

	domain "travel-services-backend/internal/domain/travelservice"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

type monthOption struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Options feeds the form selects: the fixed catalogs plus the month pairs.
func (h *Handler) Options(c echo.Context) error {
	months := make([]monthOption, 0, 12)
	for n := 1; n <= 12; n++ {
		name, _ := domain.MonthName(n)
		months = append(months, monthOption{Number: n, Name: name})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"service_types": domain.ServiceTypes,
		"statuses":      domain.Statuses,
		"airlines":      domain.Airlines,
		"cost_centers":  domain.CostCenters,
		"suppliers":     domain.Suppliers,
		"months":        months,
	})
}
