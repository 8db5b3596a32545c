package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/application/ledger"
	"github.com/schartrand77/stockworks/internal/application/usecase"
)

// HardwareHandler maneja el catálogo de hardware, sus cuentas de stock y su
// libro de movimientos.
type HardwareHandler struct {
	definitions *usecase.HardwareDefinitionUseCase
	items       *usecase.HardwareItemUseCase
	ledger      *ledger.UseCase
}

// NewHardwareHandler construye el handler.
func NewHardwareHandler(definitions *usecase.HardwareDefinitionUseCase, items *usecase.HardwareItemUseCase, ledgerUC *ledger.UseCase) *HardwareHandler {
	return &HardwareHandler{definitions: definitions, items: items, ledger: ledgerUC}
}

// ── Definiciones (catálogo) ─────────────────────────────────────────────

// CreateDefinition godoc
// @Summary      Crear definición de hardware
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHardwareDefinitionRequest  true  "Datos de la definición"
// @Success      201   {object}  dto.HardwareDefinitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hardware/definitions [post]
func (h *HardwareHandler) CreateDefinition(c *fiber.Ctx) error {
	var in dto.CreateHardwareDefinitionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.definitions.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDefinition godoc
// @Summary      Obtener definición por ID
// @Tags         hardware
// @Produce      json
// @Param        id   path  string  true  "ID de la definición"
// @Success      200  {object}  dto.HardwareDefinitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hardware/definitions/{id} [get]
func (h *HardwareHandler) GetDefinition(c *fiber.Ctx) error {
	out, err := h.definitions.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListDefinitions godoc
// @Summary      Listar definiciones de hardware
// @Tags         hardware
// @Produce      json
// @Success      200  {array}  dto.HardwareDefinitionResponse
// @Router       /api/hardware/definitions [get]
func (h *HardwareHandler) ListDefinitions(c *fiber.Ctx) error {
	out, err := h.definitions.List()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateDefinition godoc
// @Summary      Actualizar definición (patch parcial)
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la definición"
// @Param        body  body  dto.UpdateHardwareDefinitionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.HardwareDefinitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hardware/definitions/{id} [put]
func (h *HardwareHandler) UpdateDefinition(c *fiber.Ctx) error {
	var in dto.UpdateHardwareDefinitionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.definitions.Update(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteDefinition godoc
// @Summary      Eliminar definición sin referencias
// @Tags         hardware
// @Param        id  path  string  true  "ID de la definición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/hardware/definitions/{id} [delete]
func (h *HardwareHandler) DeleteDefinition(c *fiber.Ctx) error {
	if err := h.definitions.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Ítems (cuentas de stock) ────────────────────────────────────────────

// CreateItem godoc
// @Summary      Crear cuenta de stock de hardware
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHardwareItemRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.HardwareItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hardware/items [post]
func (h *HardwareHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateHardwareItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.items.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetItem godoc
// @Summary      Obtener cuenta de hardware por ID
// @Tags         hardware
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.HardwareItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hardware/items/{id} [get]
func (h *HardwareHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.items.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar cuentas de hardware
// @Tags         hardware
// @Produce      json
// @Success      200  {array}  dto.HardwareItemResponse
// @Router       /api/hardware/items [get]
func (h *HardwareHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.items.List()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListItemsLowStock godoc
// @Summary      Listar cuentas de hardware bajo su punto de reorden
// @Tags         hardware
// @Produce      json
// @Success      200  {array}  dto.HardwareItemResponse
// @Router       /api/hardware/items/low-stock [get]
func (h *HardwareHandler) ListItemsLowStock(c *fiber.Ctx) error {
	out, err := h.items.ListLowStock()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar cuenta (patch parcial; la cantidad no es editable)
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateHardwareItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.HardwareItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hardware/items/{id} [put]
func (h *HardwareHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateHardwareItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.items.Update(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar cuenta de hardware y su historial
// @Tags         hardware
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hardware/items/{id} [delete]
func (h *HardwareHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyMovement godoc
// @Summary      Registrar movimiento de stock de hardware
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hardware/movements [post]
func (h *HardwareHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mov, err := h.ledger.ApplyMovement(c.Context(), ledger.MovementInput{
		AccountID: in.AccountID,
		Type:      in.Type,
		Change:    in.Change,
		Reference: in.Reference,
		Note:      in.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Historial de movimientos de una cuenta de hardware
// @Tags         hardware
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hardware/items/{id}/movements [get]
func (h *HardwareHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.ledger.ListMovements(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}
