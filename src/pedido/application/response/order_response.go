package response

import "github.com/shopspring/decimal"

// LineItemResponse representa una línea canónica en la respuesta
type LineItemResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Title     string          `json:"title"`
	Brand     string          `json:"brand"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CustomerResponse representa el cliente en la respuesta
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderResponse representa un pedido canónico completo
type OrderResponse struct {
	OrderID       string             `json:"order_id"`
	OrderNumber   string             `json:"order_number"`
	Customer      CustomerResponse   `json:"customer"`
	Items         []LineItemResponse `json:"items"`
	DeclaredTotal decimal.Decimal    `json:"declared_total"`
	ComputedTotal decimal.Decimal    `json:"computed_total"`
	ItemCount     int                `json:"item_count"`
	CreatedAt     string             `json:"created_at"`
}

// CreateOrderResponse agrega al pedido creado el diagnóstico de coerciones
// que cayeron a valores por defecto durante la normalización
type CreateOrderResponse struct {
	OrderResponse
	CoercionFallbacks map[string]int `json:"coercion_fallbacks,omitempty"`
	Persisted         bool           `json:"persisted"`
}

// OrderListItem representa un pedido en el listado
type OrderListItem struct {
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	ComputedTotal decimal.Decimal `json:"computed_total"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     string          `json:"created_at"`
}

// ListOrdersResponse representa la respuesta paginada de pedidos
type ListOrdersResponse struct {
	Items      []OrderListItem `json:"items"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
