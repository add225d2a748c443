package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer representa los datos del cliente que realiza el pedido
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Order representa un pedido canónico (Aggregate Root).
// Se construye una sola vez por normalización y es inmutable: si hay que
// recomputar, se produce un Order nuevo, nunca se muta en el lugar.
//
// Invariante: ComputedTotal == suma de LineTotal de todas las líneas.
// DeclaredTotal se conserva para auditoría pero nunca se usa en aritmética.
type Order struct {
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	Customer      Customer        `json:"customer"`
	LineItems     []LineItem      `json:"line_items"`
	DeclaredTotal decimal.Decimal `json:"declared_total"`
	ComputedTotal decimal.Decimal `json:"computed_total"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewOrder crea un pedido canónico a partir de líneas ya fusionadas.
// El total computado se deriva siempre de las líneas.
func NewOrder(customer Customer, lineItems []LineItem, declaredTotal decimal.Decimal) (*Order, error) {
	if len(lineItems) == 0 {
		return nil, ErrOrderMustHaveItems
	}

	computed := decimal.Zero
	for _, li := range lineItems {
		computed = computed.Add(li.LineTotal)
	}

	orderID := uuid.New().String()
	now := time.Now()

	return &Order{
		OrderID:       orderID,
		OrderNumber:   buildOrderNumber(orderID, now),
		Customer:      customer,
		LineItems:     lineItems,
		DeclaredTotal: declaredTotal,
		ComputedTotal: computed,
		ItemCount:     len(lineItems),
		CreatedAt:     now,
	}, nil
}

// buildOrderNumber genera un número legible para imprimir: P-AAAAMMDD-XXXXXXXX
func buildOrderNumber(orderID string, createdAt time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(orderID, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return "P-" + createdAt.Format("20060102") + "-" + short
}

// TotalItems retorna el número de líneas fusionadas del pedido
func (o *Order) TotalItems() int {
	return len(o.LineItems)
}

// TotalUnits retorna la cantidad total de unidades de todas las líneas
func (o *Order) TotalUnits() int {
	units := 0
	for _, li := range o.LineItems {
		units += li.Quantity
	}
	return units
}
