package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// TransactionHandler maneja el libro de transacciones de combustible.
// Necesita el almacén además del usecase para evaluar el permiso de costos
// por petición: el mismo endpoint devuelve una proyección con o sin costo.
type TransactionHandler struct {
	uc    *usecase.TransactionUseCase
	store repository.SnapshotStore
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, store repository.SnapshotStore) *TransactionHandler {
	return &TransactionHandler{uc: uc, store: store}
}

// List godoc
// @Summary      Consultar el libro de transacciones
// @Description  Filtro combinable por cliente ("all" o vacío = todos), texto
//               libre y rango de fechas inclusivo. Orden fijo: fecha y hora
//               descendentes. Los campos de costo solo aparecen si la sesión
//               tiene el permiso de costos.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  false  "ID de cliente o 'all'"
// @Param        search     query  string  false  "texto libre (tarjeta, estación, dirección, nombre)"
// @Param        start_date query  string  false  "YYYY-MM-DD inclusivo"
// @Param        end_date   query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {object}  dto.LedgerResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var q dto.LedgerQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	res, err := h.uc.Query(q, sessionCanSeeCost(c, h.store))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTransactionRequest  true  "datos de la transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.Create(in, sessionCanSeeCost(c, h.store))
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// Update godoc
// @Summary      Actualizar transacción
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "ID de la transacción"
// @Param        body  body      dto.UpdateTransactionRequest  true  "datos de la transacción"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.Update(c.Params("id"), in, sessionCanSeeCost(c, h.store))
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(tx)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Tags         transactions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return transactionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// transactionError mapea los errores de dominio del libro a HTTP.
func transactionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la transacción no existe"})
	case errors.Is(err, domain.ErrCardMismatch):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CARD_MISMATCH", Message: "la tarjeta no pertenece al cliente indicado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
