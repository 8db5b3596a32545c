package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/application/usecase"
)

// QuotePDFGenerator produce la hoja de cotización imprimible.
type QuotePDFGenerator interface {
	GenerateQuotePDF(req dto.QuoteRequest, quote *dto.QuoteResponse) ([]byte, error)
}

// PricingHandler maneja las cotizaciones. Sin estado: no persiste nada.
type PricingHandler struct {
	uc  *usecase.PricingUseCase
	pdf QuotePDFGenerator
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase, pdf QuotePDFGenerator) *PricingHandler {
	return &PricingHandler{uc: uc, pdf: pdf}
}

// Quote godoc
// @Summary      Cotizar un trabajo de impresión
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Parámetros del trabajo"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Quote(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// QuotePDF godoc
// @Summary      Cotizar y descargar la hoja en PDF
// @Tags         pricing
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.QuoteRequest  true  "Parámetros del trabajo"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pricing/quote/pdf [post]
func (h *PricingHandler) QuotePDF(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quote, err := h.uc.Quote(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	doc, err := h.pdf.GenerateQuotePDF(in, quote)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cotizacion.pdf"`)
	return c.Send(doc)
}
