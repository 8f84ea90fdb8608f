package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
	"github.com/apelypenko/fueltrack-api/internal/domain"
)

// SettingsHandler maneja los ajustes globales (idioma).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Language godoc
// @Summary      Idioma configurado
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LanguageResponse
// @Router       /api/settings/language [get]
func (h *SettingsHandler) Language(c *fiber.Ctx) error {
	res, err := h.uc.Language()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// UpdateLanguage godoc
// @Summary      Cambiar idioma
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateLanguageRequest  true  "language: en | uk"
// @Success      200   {object}  dto.LanguageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/language [put]
func (h *SettingsHandler) UpdateLanguage(c *fiber.Ctx) error {
	var in dto.UpdateLanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.UpdateLanguage(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idioma no soportado: use 'en' o 'uk'"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}
