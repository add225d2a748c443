package normalize

// FallbackReason identifica por qué una coerción cayó al valor por defecto.
// Las coerciones fallidas nunca abortan la normalización: se cuentan y se
// exponen al llamador para diagnóstico.
type FallbackReason string

const (
	FallbackQuantity      FallbackReason = "non_numeric_quantity"
	FallbackPrice         FallbackReason = "non_numeric_price"
	FallbackTitle         FallbackReason = "missing_title"
	FallbackBrand         FallbackReason = "missing_brand"
	FallbackSKU           FallbackReason = "missing_sku"
	FallbackStringSizeQty FallbackReason = "string_size_default_quantity"
	FallbackMalformedSize FallbackReason = "malformed_size_entry"
	FallbackLineTotal     FallbackReason = "line_total_mismatch"
	FallbackDeclaredTotal FallbackReason = "declared_total_mismatch"
)

// Stats acumula los eventos de coerción de una normalización
type Stats struct {
	Fallbacks map[FallbackReason]int
}

// NewStats crea un acumulador vacío
func NewStats() *Stats {
	return &Stats{Fallbacks: make(map[FallbackReason]int)}
}

func (s *Stats) count(reason FallbackReason) {
	s.Fallbacks[reason]++
}

// Total retorna la cantidad total de coerciones registradas
func (s *Stats) Total() int {
	total := 0
	for _, n := range s.Fallbacks {
		total += n
	}
	return total
}
