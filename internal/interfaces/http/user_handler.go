package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/usecase"
	"github.com/apelypenko/fueltrack-api/internal/domain"
)

// UserHandler maneja la administración de usuarios autorizados.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios autorizados
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(users)
}

// Create godoc
// @Summary      Crear usuario autorizado
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserRequest  true  "datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return userError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update godoc
// @Summary      Actualizar usuario autorizado
// @Description  Password vacío conserva la credencial actual. El administrador
//               primario no puede perder el rol admin.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID del usuario"
// @Param        body  body      dto.UpdateUserRequest  true  "datos del usuario"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(user)
}

// Delete godoc
// @Summary      Eliminar usuario autorizado
// @Description  El administrador primario es intocable y nadie puede eliminar
//               su propia sesión.
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return userError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// userError mapea los errores de dominio de usuarios a HTTP.
func userError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el usuario no existe"})
	case errors.Is(err, domain.ErrPrimaryAdmin):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PRIMARY_ADMIN", Message: "el administrador primario no puede eliminarse"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no puede eliminar su propia cuenta"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
