package normalize

// RawItem representa un item de pedido crudo tal como llega del cliente:
// una bolsa de campos sin esquema, producida por varias generaciones de
// clientes que codifican talles y cantidades de formas incompatibles.
// Nunca se confía en su consistencia interna.
type RawItem map[string]any

// Shape clasifica la forma de entrada de un RawItem. Es un variante cerrado:
// el detector lo produce una sola vez y el aplanador hace matching exhaustivo
// sobre él, en lugar de repetir sondeo de campos en cada punto de uso.
type Shape int

const (
	// ShapeObjectSizeList: sizes es un array cuyo primer elemento es un objeto
	ShapeObjectSizeList Shape = iota
	// ShapeStringSizeList: sizes es un array cuyo primer elemento es un string
	ShapeStringSizeList
	// ShapeSizeQuantityMap: sizeQuantities es un objeto {talle -> cantidad}
	ShapeSizeQuantityMap
	// ShapeSingleSize: size es un string plano a nivel de item
	ShapeSingleSize
	// ShapeFallback: ninguna de las anteriores
	ShapeFallback
)

// String retorna el nombre de la forma, para logs y diagnóstico
func (s Shape) String() string {
	switch s {
	case ShapeObjectSizeList:
		return "object_size_list"
	case ShapeStringSizeList:
		return "string_size_list"
	case ShapeSizeQuantityMap:
		return "size_quantity_map"
	case ShapeSingleSize:
		return "single_size"
	default:
		return "fallback"
	}
}

// DetectShape clasifica un item crudo probando las formas conocidas en orden
// fijo de prioridad: gana la primera que matchea. La ambigüedad se resuelve
// por prioridad, no por heurística. Nunca falla: un item que no matchea
// ninguna forma resuelve siempre a ShapeFallback.
func DetectShape(raw RawItem) Shape {
	if sizes, ok := raw["sizes"].([]any); ok && len(sizes) > 0 {
		switch sizes[0].(type) {
		case map[string]any:
			return ShapeObjectSizeList
		case string:
			return ShapeStringSizeList
		}
	}

	if sq, ok := raw["sizeQuantities"].(map[string]any); ok && sq != nil {
		return ShapeSizeQuantityMap
	}

	if _, ok := raw["size"].(string); ok {
		return ShapeSingleSize
	}

	return ShapeFallback
}
