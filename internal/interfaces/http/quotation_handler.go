package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
)

// QuotationHandler maneja las peticiones HTTP para cotizaciones (protegido).
type QuotationHandler struct {
	uc *usecase.QuotationUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *usecase.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cotización
// @Description  Resuelve precio y descripción por defecto desde el repuesto; cabecera y líneas se escriben en una transacción.
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuotationRequest  true  "Cliente y líneas"
// @Success      201   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
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
// @Summary      Obtener cotización por ID (con líneas)
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cotización no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Subcadena a buscar en número o cliente"
// @Success      200     {array}  dto.QuotationResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la cotización
// @Description  Una cotización aceptada o rechazada ya no cambia de estado (409).
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cotización"
// @Param        body  body  dto.UpdateQuotationStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/status [post]
func (h *QuotationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateQuotationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cotización (con sus líneas)
// @Tags         quotations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cotización"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
