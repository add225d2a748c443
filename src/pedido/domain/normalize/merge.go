package normalize

import (
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
)

// Merge colapsa líneas que refieren al mismo producto y talle (misma
// MergeKey) sumando cantidad y subtotal. El resto de los campos se toma de
// la primera aparición y el orden de salida es el de primera aparición.
// Función pura e idempotente: aplicarla sobre una salida ya fusionada
// devuelve el mismo resultado.
func Merge(items []entity.LineItem) []entity.LineItem {
	merged := make([]entity.LineItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, li := range items {
		key := li.MergeKey()
		if at, seen := index[key]; seen {
			merged[at].Quantity += li.Quantity
			merged[at].LineTotal = merged[at].LineTotal.Add(li.LineTotal)
			continue
		}
		index[key] = len(merged)
		merged = append(merged, li)
	}

	return merged
}
