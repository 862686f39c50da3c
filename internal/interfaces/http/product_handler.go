package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain"
)

// Contratos mínimos del handler; los implementan *usecase.ProductUseCase y *inventory.StockUseCase.
type productLister interface {
	List(ctx context.Context, q string) ([]dto.ProductListItem, error)
}

type stockService interface {
	BySKU(ctx context.Context, sku string) (*dto.StockResponse, error)
}

// ProductHandler maneja el listado de productos y el stock por SKU (protegido).
type ProductHandler struct {
	products productLister
	stock    stockService
}

// NewProductHandler construye el handler.
func NewProductHandler(products productLister, stock stockService) *ProductHandler {
	return &ProductHandler{products: products, stock: stock}
}

// List godoc
// @Summary      Listar productos con stock total y desglose por bodega
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Filtro por subcadena sobre SKU o nombre"
// @Success      200  {array}  dto.ProductListItem
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.products.List(c.Context(), c.Query("q"))
	if err != nil {
		log.Error().Err(err).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno al listar productos"})
	}
	return c.JSON(items)
}

// Stock godoc
// @Summary      Stock por bodega y total de un SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{sku}/stock [get]
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	out, err := h.stock.BySKU(c.Context(), c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrSKUNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no existe"})
		}
		log.Error().Err(err).Str("sku", c.Params("sku")).Msg("consultar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando stock"})
	}
	return c.JSON(out)
}
