package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
	domaininv "github.com/repucenter/repucenter-api/internal/domain/inventory"
)

// fakeStore implementa en memoria los puertos ProductRepository,
// WarehouseRepository, MovementRepository y StockRepository, reproduciendo la
// semántica de las consultas SQL (LEFT JOIN con bodegas en 0 incluidas, orden
// (created_at, id) en la traza).
type fakeStore struct {
	products   []entity.Product
	warehouses []entity.Warehouse
	movements  []entity.Movement

	nextMovementID int64
	base           time.Time

	failCreate error // si no es nil, Create falla sin escribir
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextMovementID: 1,
		base:           time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) addProduct(id int64, sku, name string) {
	s.products = append(s.products, entity.Product{ID: id, SKU: sku, Name: name})
}

func (s *fakeStore) addWarehouse(id int64, name string) {
	s.warehouses = append(s.warehouses, entity.Warehouse{ID: id, Name: name})
}

// ── ProductRepository ─────────────────────────────────────────────────────────

func (s *fakeStore) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].SKU == sku {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ── WarehouseRepository ───────────────────────────────────────────────────────

func (s *fakeStore) Exists(_ context.Context, id int64) (bool, error) {
	for _, w := range s.warehouses {
		if w.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// ── MovementRepository ────────────────────────────────────────────────────────

func (s *fakeStore) Create(_ context.Context, m *entity.Movement) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	m.ID = s.nextMovementID
	m.CreatedAt = s.base.Add(time.Duration(s.nextMovementID) * time.Minute)
	s.nextMovementID++
	s.movements = append(s.movements, *m)
	return nil
}

func (s *fakeStore) TraceBySKU(_ context.Context, sku string) ([]entity.TraceEntry, error) {
	var product *entity.Product
	for i := range s.products {
		if s.products[i].SKU == sku {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return nil, nil
	}
	var entries []entity.TraceEntry
	for _, m := range s.movements {
		if m.ProductID != product.ID {
			continue
		}
		entries = append(entries, entity.TraceEntry{
			SKU:           product.SKU,
			ProductName:   product.Name,
			Warehouse:     s.warehouseName(m.WarehouseID),
			Type:          m.Type,
			QuantityDelta: domaininv.Effect(m.Type, m.Qty),
			Reference:     m.Reference,
			CreatedAt:     m.CreatedAt,
			MovementID:    m.ID,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].MovementID < entries[j].MovementID
	})
	return entries, nil
}

// ── StockRepository ───────────────────────────────────────────────────────────

func (s *fakeStore) StockByWarehouse(_ context.Context, productID int64) ([]entity.WarehouseStock, error) {
	result := make([]entity.WarehouseStock, 0, len(s.warehouses))
	for _, w := range s.warehouses {
		stock := decimal.Zero
		for _, m := range s.movements {
			if m.ProductID == productID && m.WarehouseID == w.ID {
				stock = stock.Add(domaininv.Effect(m.Type, m.Qty))
			}
		}
		result = append(result, entity.WarehouseStock{Warehouse: w.Name, Stock: stock})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Warehouse < result[j].Warehouse })
	return result, nil
}

func (s *fakeStore) TotalStock(_ context.Context, productID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range s.movements {
		if m.ProductID == productID {
			total = total.Add(domaininv.Effect(m.Type, m.Qty))
		}
	}
	return total, nil
}

func (s *fakeStore) SearchProducts(_ context.Context, q string) ([]entity.ProductStockSummary, error) {
	var summaries []entity.ProductStockSummary
	for _, p := range s.products {
		if q != "" && !containsFold(p.SKU, q) && !containsFold(p.Name, q) {
			continue
		}
		total, _ := s.TotalStock(context.Background(), p.ID)
		all, _ := s.StockByWarehouse(context.Background(), p.ID)
		byWh := []entity.WarehouseStock{}
		for _, ws := range all {
			if !ws.Stock.IsZero() || s.hasMovementsIn(p.ID, ws.Warehouse) {
				byWh = append(byWh, ws)
			}
		}
		summaries = append(summaries, entity.ProductStockSummary{
			ProductID:   p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			TotalStock:  total,
			ByWarehouse: byWh,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].SKU < summaries[j].SKU })
	return summaries, nil
}

func (s *fakeStore) warehouseName(id int64) string {
	for _, w := range s.warehouses {
		if w.ID == id {
			return w.Name
		}
	}
	return ""
}

func (s *fakeStore) hasMovementsIn(productID int64, warehouse string) bool {
	for _, m := range s.movements {
		if m.ProductID == productID && s.warehouseName(m.WarehouseID) == warehouse {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
