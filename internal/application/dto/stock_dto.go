package dto

import "github.com/shopspring/decimal"

// StockResponse respuesta de GET /products/:sku/stock y GET /trace/:sku/stock.
// ByWarehouse lista toda bodega conocida, incluidas las de stock 0.
type StockResponse struct {
	SKU         string              `json:"sku"`
	ByWarehouse []WarehouseStockDTO `json:"by_warehouse"`
	TotalStock  decimal.Decimal     `json:"total_stock"`
}

// ProductListItem elemento de GET /products.
type ProductListItem struct {
	SKU         string              `json:"sku"`
	Name        string              `json:"name"`
	TotalStock  decimal.Decimal     `json:"total_stock"`
	ByWarehouse []WarehouseStockDTO `json:"by_warehouse"`
}
