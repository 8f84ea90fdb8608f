package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
	"github.com/apelypenko/fueltrack-api/internal/domain"
)

// ClientHandler maneja el CRUD de cuentas de cliente.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ClientResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(clients)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(client)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateClientRequest  true  "datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return clientError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "ID del cliente"
// @Param        body  body      dto.UpdateClientRequest  true  "datos del cliente"
// @Success      200   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return clientError(c, err)
	}
	return c.JSON(client)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Las transacciones del cliente no se eliminan; quedan con la
//               referencia original y se muestran sin nombre de cuenta.
// @Tags         clients
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return clientError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// clientError mapea los errores de dominio del CRUD de clientes a HTTP.
func clientError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
	case errors.Is(err, domain.ErrDuplicateClientID):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CLIENT_ID", Message: "el identificador de cliente ya está en uso"})
	case errors.Is(err, domain.ErrDuplicateCardAssignment):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CARD_TAKEN", Message: "una de las tarjetas ya está asignada a otra cuenta"})
	case errors.Is(err, domain.ErrDuplicateCardInSubmission):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CARD_REPEATED", Message: "la misma tarjeta aparece más de una vez en la solicitud"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
