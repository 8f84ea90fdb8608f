package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/importing"
	"github.com/apelypenko/fueltrack-api/internal/domain"
)

// ImportHandler maneja la carga de planillas (XLSX o CSV).
type ImportHandler struct {
	uc *importing.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importing.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Clients godoc
// @Summary      Importar clientes desde planilla
// @Description  Acepta XLSX o CSV bajo el campo multipart "file". Los
//               encabezados se resuelven por alias (inglés y ucraniano) y las
//               celdas ausentes reciben valores por defecto. La carga es
//               append-only: nunca modifica registros existentes.
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla de clientes"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/imports/clients [post]
func (h *ImportHandler) Clients(c *fiber.Ctx) error {
	header, f, err := formFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}
	defer f.Close()

	res, err := h.uc.ImportClients(header.Filename, f)
	if err != nil {
		return importError(c, err)
	}
	return c.JSON(res)
}

// Transactions godoc
// @Summary      Importar transacciones desde planilla
// @Description  Las filas se asocian a cuentas por número de tarjeta; sin
//               coincidencia quedan sin asignar. La carga es append-only.
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla de transacciones"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/imports/transactions [post]
func (h *ImportHandler) Transactions(c *fiber.Ctx) error {
	header, f, err := formFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}
	defer f.Close()

	res, err := h.uc.ImportTransactions(header.Filename, f)
	if err != nil {
		return importError(c, err)
	}
	return c.JSON(res)
}

// formFile abre el archivo multipart "file" de la petición.
func formFile(c *fiber.Ctx) (*multipart.FileHeader, multipart.File, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return header, f, nil
}

// importError mapea los errores de importación a HTTP.
func importError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrImportParse) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo leer la planilla; verifique el formato"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
