package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem representa una línea canónica de pedido: un par (producto, talle)
// con cantidad y total monetario. Es el resultado del aplanado de los items
// crudos y la unidad sobre la que operan merge, totales y paginación.
type LineItem struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Brand     string          `json:"brand"`
	SKU       string          `json:"sku"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// NewLineItem crea una línea con subtotal calculado desde precio y cantidad
func NewLineItem(title, brand, sku, size string, quantity int, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		ID:        uuid.New().String(),
		Title:     title,
		Brand:     brand,
		SKU:       sku,
		Size:      size,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// MergeKey identifica líneas combinables: mismo SKU y mismo talle
func (li LineItem) MergeKey() string {
	return li.SKU + "__" + li.Size
}
