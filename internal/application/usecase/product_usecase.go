package usecase

import (
	"context"
	"strings"

	"github.com/repucenter/repucenter-api/internal/application/dto"
	"github.com/repucenter/repucenter-api/internal/domain/repository"
)

// ProductUseCase listado de productos con stock calculado.
// Los productos se crean fuera de este servicio; aquí solo hay lectura.
type ProductUseCase struct {
	stockRepo repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{stockRepo: stockRepo}
}

// List devuelve todos los productos con stock total y desglose por bodega,
// filtrados por subcadena sobre SKU o nombre si q no está vacío.
// El desglose lista solo bodegas con movimientos del producto (vista estrecha);
// la vista completa con ceros vive en los endpoints de stock por SKU.
func (uc *ProductUseCase) List(ctx context.Context, q string) ([]dto.ProductListItem, error) {
	summaries, err := uc.stockRepo.SearchProducts(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(summaries))
	for _, s := range summaries {
		byWh := make([]dto.WarehouseStockDTO, 0, len(s.ByWarehouse))
		for _, ws := range s.ByWarehouse {
			byWh = append(byWh, dto.WarehouseStockDTO{Warehouse: ws.Warehouse, Stock: ws.Stock})
		}
		items = append(items, dto.ProductListItem{
			SKU:         s.SKU,
			Name:        s.Name,
			TotalStock:  s.TotalStock,
			ByWarehouse: byWh,
		})
	}
	return items, nil
}
