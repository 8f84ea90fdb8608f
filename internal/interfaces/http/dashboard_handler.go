package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/analytics"
	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// DashboardHandler expone el resumen de flota.
type DashboardHandler struct {
	uc    *analytics.DashboardUseCase
	store repository.SnapshotStore
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, store repository.SnapshotStore) *DashboardHandler {
	return &DashboardHandler{uc: uc, store: store}
}

// Summary godoc
// @Summary      Resumen agregado de la flota
// @Description  Litros, facturación, margen (solo con permiso de costos),
//               conteo de cuentas y tarjetas, y transacciones recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	res, err := h.uc.Summary(sessionCanSeeCost(c, h.store))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}
