package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Autopartes-api/internal/application/usecase"
)

// StatsHandler expone los contadores agregados del dashboard (protegido).
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Overview godoc
// @Summary      Contadores generales del inventario
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
