package render

// Sink es el destino abstracto de las instrucciones de dibujo. El renderer
// emite texto y rectángulos en coordenadas absolutas; quién produce los
// bytes finales (PDF u otro) es decisión de la infraestructura.
//
// Las implementaciones acumulan los errores de I/O internamente y los
// devuelven al materializar los bytes, al estilo fpdf.
type Sink interface {
	// AddPage abre una página nueva; la primera llamada abre la primera
	AddPage()
	// Text dibuja texto con su extremo izquierdo en (x, y)
	Text(x, y float64, text string)
	// TextRight dibuja texto con su extremo derecho en (x, y)
	TextRight(x, y float64, text string)
	// Rect dibuja el contorno de un rectángulo
	Rect(x, y, w, h float64)
	// Line dibuja una línea recta
	Line(x1, y1, x2, y2 float64)
}
