package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Autopartes-api/internal/application/dto"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
)

// AppointmentHandler maneja las peticiones HTTP para citas de servicio (protegido).
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar cita de servicio
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "Cliente, vehículo, servicio y fecha"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
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
// @Summary      Obtener cita por ID
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cita"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cita no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar citas
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Subcadena a buscar en cliente, vehículo o tipo de servicio"
// @Success      200     {array}  dto.AppointmentResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cita (parcial, incluye cambio de estado)
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cita"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cita no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cita
// @Tags         appointments
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
