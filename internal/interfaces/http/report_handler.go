package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/reports"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
)

// ReportHandler maneja los metadatos de reportes y su exportación PDF/CSV (protegido).
type ReportHandler struct {
	uc     *usecase.ReportUseCase
	export *reports.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, export *reports.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, export: export}
}

// Create godoc
// @Summary      Registrar metadatos de un reporte generado
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "name, type, date_range"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener metadatos de un reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del reporte"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "reporte no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reportes generados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar metadatos de un reporte
// @Tags         reports
// @Security     Bearer
// @Param        id  path  string  true  "ID del reporte"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Exportar reporte como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        type  path  string  true  "inventory | low-stock | movements | supplier-analysis"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/{type}/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	return h.exportAs(c, reports.FormatPDF)
}

// ExportCSV godoc
// @Summary      Exportar reporte como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        type  path  string  true  "inventory | low-stock | movements | supplier-analysis"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/{type}/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	return h.exportAs(c, reports.FormatCSV)
}

func (h *ReportHandler) exportAs(c *fiber.Ctx, format string) error {
	content, filename, contentType, err := h.export.Export(c.UserContext(), c.Params("type"), format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}
