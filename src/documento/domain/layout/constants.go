package layout

import "math"

// Constants agrupa las dimensiones de página del documento imprimible.
// Viajan explícitamente por paginación y renderizado: nunca se leen de
// configuración ambiente. Unidades en puntos (1 pt = 1/72 pulgada).
type Constants struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// HeaderHeight cubre título, bloque de cliente y fila de encabezados de
	// columna; se repite al inicio de cada página.
	HeaderHeight float64
	FooterHeight float64

	LineHeight   float64
	MinRowHeight float64

	// ProductColumnChars es el ancho de la columna de producto en
	// caracteres: un título más largo envuelve en líneas adicionales.
	ProductColumnChars int
}

// DefaultConstants retorna las dimensiones por defecto: A4 vertical
func DefaultConstants() Constants {
	return Constants{
		PageWidth:          595.28,
		PageHeight:         841.89,
		MarginLeft:         40,
		MarginRight:        40,
		MarginTop:          40,
		MarginBottom:       40,
		HeaderHeight:       90,
		FooterHeight:       28,
		LineHeight:         12,
		MinRowHeight:       18,
		ProductColumnChars: 38,
	}
}

// ContentBottom retorna la Y máxima utilizable antes del margen inferior
func (c Constants) ContentBottom() float64 {
	return c.PageHeight - c.MarginBottom
}

// ContentWidth retorna el ancho utilizable entre márgenes
func (c Constants) ContentWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// RowHeight calcula la altura requerida por una fila: la mínima, o más si el
// título envuelve en varias líneas al ancho de columna configurado.
func (c Constants) RowHeight(title string) float64 {
	lines := c.TitleLines(title)
	h := float64(lines) * c.LineHeight
	if h < c.MinRowHeight {
		return c.MinRowHeight
	}
	return h
}

// TitleLines retorna en cuántas líneas envuelve un título
func (c Constants) TitleLines(title string) int {
	if c.ProductColumnChars <= 0 {
		return 1
	}
	runes := len([]rune(title))
	if runes == 0 {
		return 1
	}
	return int(math.Ceil(float64(runes) / float64(c.ProductColumnChars)))
}
