package normalize

import (
	"regexp"
	"strings"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"

	"github.com/shopspring/decimal"
)

// emailPattern es deliberadamente conservador: algo@algo.algo sin espacios.
// No intenta validar RFC 5322 completo.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Order normaliza un pedido crudo a su representación canónica.
//
// Orquesta detector → aplanador → fusión sobre todos los items crudos (en
// orden de item crudo, luego orden interno de cada uno), recalcula el total
// desde las líneas fusionadas y conserva el total declarado solo para
// auditoría. Falla únicamente con ValidationError por nombre o email de
// cliente faltante o inválido. No muta sus entradas ni realiza I/O.
func Order(customer entity.Customer, rawItems []RawItem, declaredTotal decimal.Decimal, cfg Config) (*entity.Order, *Stats, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, nil, err
	}

	stats := NewStats()

	var flattened []entity.LineItem
	for _, raw := range rawItems {
		shape := DetectShape(raw)
		flattened = append(flattened, Flatten(raw, shape, cfg, stats)...)
	}

	merged := Merge(flattened)

	order, err := entity.NewOrder(customer, merged, declaredTotal)
	if err != nil {
		return nil, nil, err
	}

	// El total declarado nunca se usa para aritmética; una discrepancia con
	// el computado solo se registra para diagnóstico.
	if !declaredTotal.IsZero() && declaredTotal.Sub(order.ComputedTotal).Abs().GreaterThan(totalTolerance) {
		stats.count(FallbackDeclaredTotal)
	}

	return order, stats, nil
}

func validateCustomer(customer entity.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return entity.NewValidationError("customer.name", entity.ErrCustomerNameRequired)
	}
	email := strings.TrimSpace(customer.Email)
	if email == "" {
		return entity.NewValidationError("customer.email", entity.ErrCustomerEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return entity.NewValidationError("customer.email", entity.ErrCustomerEmailInvalid)
	}
	return nil
}
