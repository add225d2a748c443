package request

// CustomerRequest representa los datos del cliente en la petición
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CreateOrderRequest representa la petición para crear un pedido. Los items
// llegan sin esquema (cada generación de cliente codifica talles y
// cantidades distinto); la normalización les da forma canónica.
type CreateOrderRequest struct {
	Customer      CustomerRequest  `json:"customer"`
	Items         []map[string]any `json:"items" binding:"required,min=1"`
	DeclaredTotal float64          `json:"declared_total"`
}
