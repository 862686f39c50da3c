package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain"
	"github.com/repucenter/repucenter-api/internal/domain/entity"
	"github.com/repucenter/repucenter-api/internal/domain/repository"
)

// StockUseCase agrega el stock de un producto desde el libro de movimientos.
// Lectura pura: cada llamada recalcula sobre lo ya confirmado en la DB, sin
// cache ni snapshot propio.
type StockUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// BySKU resuelve el SKU y devuelve stock por bodega (toda bodega, 0 incluido) y total.
// SKU inexistente retorna ErrSKUNotFound; esa verificación ocurre aquí, no en el agregador.
func (uc *StockUseCase) BySKU(ctx context.Context, sku string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrSKUNotFound
	}
	byWarehouse, total, err := uc.ForProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		SKU:         product.SKU,
		ByWarehouse: byWarehouse,
		TotalStock:  total,
	}, nil
}

// ForProduct calcula desglose por bodega y total para un product_id ya resuelto.
// Las dos consultas son independientes y corren en paralelo.
func (uc *StockUseCase) ForProduct(ctx context.Context, productID int64) ([]dto.WarehouseStockDTO, decimal.Decimal, error) {
	var (
		perWarehouse []entity.WarehouseStock
		total        decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		perWarehouse, err = uc.stockRepo.StockByWarehouse(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.stockRepo.TotalStock(gctx, productID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, decimal.Zero, err
	}
	return toWarehouseStockDTOs(perWarehouse), total, nil
}

func toWarehouseStockDTOs(in []entity.WarehouseStock) []dto.WarehouseStockDTO {
	out := make([]dto.WarehouseStockDTO, 0, len(in))
	for _, ws := range in {
		out = append(out, dto.WarehouseStockDTO{Warehouse: ws.Warehouse, Stock: ws.Stock})
	}
	return out
}
