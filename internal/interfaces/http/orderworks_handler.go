package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/infrastructure/orderworks"
)

// OrderWorksHandler expone los trabajos de OrderWorks para que el taller
// descuente stock contra trabajos reales.
type OrderWorksHandler struct {
	client *orderworks.Client
}

// NewOrderWorksHandler construye el handler.
func NewOrderWorksHandler(client *orderworks.Client) *OrderWorksHandler {
	return &OrderWorksHandler{client: client}
}

// ListJobs godoc
// @Summary      Listar trabajos de OrderWorks
// @Tags         orderworks
// @Produce      json
// @Success      200  {array}  object
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/orderworks/jobs [get]
func (h *OrderWorksHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.client.ListJobs(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, orderworks.ErrNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: err.Error()})
		case errors.Is(err, orderworks.ErrAuthentication):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_AUTH", Message: err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}
