package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain"
)

// movementService contrato mínimo del handler; lo implementa *inventory.RegisterMovementUseCase.
type movementService interface {
	Register(ctx context.Context, actorID int64, in dto.CreateMovementRequest) (*dto.MovementResponse, error)
}

// MovementHandler maneja POST /movements (restringido a JEFE_BODEGA vía RequireRole).
type MovementHandler struct {
	uc movementService
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc movementService) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de inventario (IN/OUT/ADJ)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "sku, warehouse_id, type_code, qty, reference?, notes?"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido (qty debe ser numérico)"})
	}
	out, err := h.uc.Register(c.Context(), actorID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrSKUNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no existe"})
		case errors.Is(err, domain.ErrWarehouseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no existe"})
		default:
			log.Error().Err(err).Str("sku", in.SKU).Msg("crear movimiento")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno al crear movimiento"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
