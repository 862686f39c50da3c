package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain"
)

// traceService contrato mínimo del handler; lo implementa *inventory.TraceUseCase.
type traceService interface {
	BySKU(ctx context.Context, sku string) (*dto.TraceResponse, error)
}

// TraceHandler maneja la trazabilidad por SKU (protegido).
type TraceHandler struct {
	trace traceService
	stock stockService
}

// NewTraceHandler construye el handler.
func NewTraceHandler(trace traceService, stock stockService) *TraceHandler {
	return &TraceHandler{trace: trace, stock: stock}
}

// Trace godoc
// @Summary      Línea de tiempo de movimientos de un SKU con balance acumulado
// @Tags         trace
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.TraceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /trace/{sku} [get]
func (h *TraceHandler) Trace(c *fiber.Ctx) error {
	out, err := h.trace.BySKU(c.Context(), c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrNoMovements) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU sin movimientos o inexistente"})
		}
		log.Error().Err(err).Str("sku", c.Params("sku")).Msg("trazabilidad")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno en trazabilidad"})
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Stock por bodega y total de un SKU (vista de trazabilidad)
// @Tags         trace
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /trace/{sku}/stock [get]
func (h *TraceHandler) Stock(c *fiber.Ctx) error {
	out, err := h.stock.BySKU(c.Context(), c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrSKUNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no existe"})
		}
		log.Error().Err(err).Str("sku", c.Params("sku")).Msg("consultar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno al calcular stock"})
	}
	return c.JSON(out)
}
