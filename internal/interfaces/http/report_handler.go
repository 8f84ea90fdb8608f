package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/report"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// MIME types de los archivos generados.
const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReportHandler expone exportaciones (XLSX, PDF) y respaldo JSON.
type ReportHandler struct {
	exports *report.ExportUseCase
	backups *report.BackupUseCase
	store   repository.SnapshotStore
}

// NewReportHandler construye el handler.
func NewReportHandler(exports *report.ExportUseCase, backups *report.BackupUseCase, store repository.SnapshotStore) *ReportHandler {
	return &ReportHandler{exports: exports, backups: backups, store: store}
}

// TransactionsXLSX godoc
// @Summary      Exportar transacciones a XLSX
// @Description  Respeta el filtro vigente del libro. La columna de costo solo
//               se incluye si la sesión tiene el permiso de costos.
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        client_id  query  string  false  "ID de cliente o 'all'"
// @Param        search     query  string  false  "texto libre"
// @Param        start_date query  string  false  "YYYY-MM-DD inclusivo"
// @Param        end_date   query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/exports/transactions [get]
func (h *ReportHandler) TransactionsXLSX(c *fiber.Ctx) error {
	var q dto.LedgerQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	data, filename, err := h.exports.TransactionsXLSX(q, sessionCanSeeCost(c, h.store))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, data, filename, mimeXLSX)
}

// ClientInvoicePDF godoc
// @Summary      Factura PDF de un cliente
// @Description  Incluye todas las transacciones del cliente. El precio de
//               compra por fila solo aparece si la transacción lo permite.
//               Las etiquetas salen en el idioma pedido (en o uk).
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Param        clientId  path   string  true   "ID del cliente"
// @Param        lang      query  string  false  "en | uk (por defecto el configurado)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exports/invoices/{clientId} [get]
func (h *ReportHandler) ClientInvoicePDF(c *fiber.Ctx) error {
	data, filename, err := h.exports.ClientInvoicePDF(c.Params("clientId"), c.Query("lang"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, data, filename, mimePDF)
}

// ConsolidatedPDF godoc
// @Summary      Factura consolidada PDF
// @Description  Reporte apaisado sobre el resultado del filtro vigente, con
//               columna de cuenta por fila y totales generales.
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Param        client_id  query  string  false  "ID de cliente o 'all'"
// @Param        search     query  string  false  "texto libre"
// @Param        start_date query  string  false  "YYYY-MM-DD inclusivo"
// @Param        end_date   query  string  false  "YYYY-MM-DD inclusivo"
// @Param        lang       query  string  false  "en | uk (por defecto el configurado)"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/exports/consolidated [get]
func (h *ReportHandler) ConsolidatedPDF(c *fiber.Ctx) error {
	var q dto.LedgerQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	data, filename, err := h.exports.ConsolidatedPDF(q, sessionCanSeeCost(c, h.store), c.Query("lang"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, data, filename, mimePDF)
}

// Backup godoc
// @Summary      Descargar respaldo JSON
// @Description  Documento completo: clientes, transacciones, usuarios
//               autorizados y versión de formato.
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/backup [get]
func (h *ReportHandler) Backup(c *fiber.Ctx) error {
	doc, filename, err := h.backups.Backup()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, data, filename, fiber.MIMEApplicationJSON)
}

// Restore godoc
// @Summary      Restaurar desde respaldo JSON
// @Description  Reemplaza el estado completo por el contenido del respaldo.
//               Requiere confirm=true; el documento se valida antes de
//               escribir nada y el administrador primario se vuelve a
//               garantizar después de restaurar.
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        confirm  query  bool                true  "debe ser true"
// @Param        body     body   dto.BackupDocument  true  "documento de respaldo"
// @Success      200  {object}  dto.RestoreResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/restore [post]
func (h *ReportHandler) Restore(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm")
	res, err := h.backups.Restore(c.Body(), confirmed)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "la restauración destruye el estado actual; repita con confirm=true"})
		case errors.Is(err, domain.ErrRestoreFormat):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BACKUP", Message: "el documento no es un respaldo válido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(res)
}

// sendFile envía bytes como descarga adjunta.
func sendFile(c *fiber.Ctx, data []byte, filename, mime string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
