package inventory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain"
	"github.com/repucenter/repucenter-api/internal/domain/entity"
	domaininv "github.com/repucenter/repucenter-api/internal/domain/inventory"
	"github.com/repucenter/repucenter-api/internal/domain/repository"
)

// RegisterMovementUseCase valida y registra movimientos (IN/OUT/ADJ) en el
// libro y devuelve el stock recalculado tras la escritura.
type RegisterMovementUseCase struct {
	movRepo       repository.MovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	stock         *StockUseCase
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	stock *StockUseCase,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movRepo:       movRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		stock:         stock,
	}
}

// Register ejecuta la secuencia de validación (fail-fast, gana la primera regla
// que falla), normaliza la cantidad, inserta el movimiento y recalcula stock.
// El insert es una única sentencia: si falla, no queda estado parcial.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, actorID int64, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	// 1) Campos obligatorios
	if in.SKU == "" || in.WarehouseID == 0 || in.TypeCode == "" || in.Qty == nil {
		return nil, fmt.Errorf("%w: faltan datos obligatorios (sku, warehouse_id, type_code, qty)", domain.ErrInvalidInput)
	}

	// 2) Tipo normalizado (case-insensitive, trim)
	movType, err := entity.ParseMovementType(in.TypeCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	// 3-4) Regla de signo (la cantidad ya llegó numérica vía el decode del body)
	qty := *in.Qty
	if err := domaininv.ValidateQty(movType, qty); err != nil {
		return nil, err
	}

	// 5-6) Resolver claves foráneas en paralelo: ninguna depende de la otra
	var (
		product  *entity.Product
		whExists bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = uc.productRepo.GetBySKU(gctx, in.SKU)
		return err
	})
	g.Go(func() error {
		var err error
		whExists, err = uc.warehouseRepo.Exists(gctx, in.WarehouseID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrSKUNotFound
	}
	if !whExists {
		return nil, domain.ErrWarehouseNotFound
	}

	// 7-8) Normalizar cantidad a persistir e insertar (la DB asigna id y created_at)
	movement := &entity.Movement{
		ProductID:   product.ID,
		WarehouseID: in.WarehouseID,
		Type:        movType,
		Qty:         domaininv.NormalizeQty(movType, qty),
		Reference:   in.Reference,
		Notes:       in.Notes,
		CreatedBy:   actorID,
	}
	if err := uc.movRepo.Create(ctx, movement); err != nil {
		return nil, err
	}

	// 9) Recalcular stock y exponer la cantidad en forma lógica con signo
	byWarehouse, total, err := uc.stock.ForProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		SKU:              in.SKU,
		WarehouseID:      in.WarehouseID,
		TypeCode:         movType.String(),
		Qty:              domaininv.SignedQty(movType, qty),
		Reference:        in.Reference,
		Notes:            in.Notes,
		MovementID:       movement.ID,
		CreatedAt:        movement.CreatedAt,
		StockByWarehouse: byWarehouse,
		TotalStock:       total,
	}, nil
}
