package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain"
	"github.com/repucenter/repucenter-api/internal/domain/repository"
)

// TraceUseCase arma la traza cronológica de un SKU con balance acumulado.
type TraceUseCase struct {
	movRepo repository.MovementRepository
}

// NewTraceUseCase construye el caso de uso.
func NewTraceUseCase(movRepo repository.MovementRepository) *TraceUseCase {
	return &TraceUseCase{movRepo: movRepo}
}

// BySKU devuelve los movimientos del SKU en orden (created_at, id) con el
// balance acumulado global (todas las bodegas):
//
//	balance[0] = delta[0];  balance[i] = balance[i-1] + delta[i]
//
// Cero movimientos (incluye SKU inexistente) retorna ErrNoMovements; el caller
// lo distingue de "encontrado pero vacío", que aquí no existe como estado.
func (uc *TraceUseCase) BySKU(ctx context.Context, sku string) (*dto.TraceResponse, error) {
	entries, err := uc.movRepo.TraceBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoMovements
	}

	running := decimal.Zero
	movements := make([]dto.TraceMovementDTO, 0, len(entries))
	for _, e := range entries {
		running = running.Add(e.QuantityDelta)
		movements = append(movements, dto.TraceMovementDTO{
			SKU:           e.SKU,
			ProductName:   e.ProductName,
			Warehouse:     e.Warehouse,
			MovementType:  e.Type.String(),
			QuantityDelta: e.QuantityDelta,
			Reference:     e.Reference,
			CreatedAt:     e.CreatedAt,
			MovementID:    e.MovementID,
			RunningStock:  running,
		})
	}

	return &dto.TraceResponse{
		SKU:               entries[0].SKU,
		Product:           entries[0].ProductName,
		Movements:         movements,
		FinalStockByTrace: running,
	}, nil
}
