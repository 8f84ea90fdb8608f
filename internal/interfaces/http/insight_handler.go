package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
)

// InsightHandler expone el resumen de actividad asistido por IA.
type InsightHandler struct {
	uc *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Summarize godoc
// @Summary      Resumen IA de la actividad de flota
// @Description  Agrega los totales del libro completo y envía una muestra
//               acotada al proveedor de IA. Timeout interno de 10 s. El idioma
//               vacío usa el configurado en ajustes.
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InsightRequest  true  "language (opcional: en | uk)"
// @Success      200   {object}  dto.InsightResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/insights [post]
func (h *InsightHandler) Summarize(c *fiber.Ctx) error {
	var in dto.InsightRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Summarize(c.Context(), in)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "el proveedor de IA tardó demasiado; intente de nuevo"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_FAILED", Message: err.Error()})
	}
	return c.JSON(res)
}
