package layout

import (
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
)

// Page representa una página ya diagramada del documento. Las páginas las
// crea y posee exclusivamente el motor de paginación durante una pasada de
// render; una vez devueltas no se mutan ni se persisten.
type Page struct {
	Index        int
	Rows         []entity.LineItem
	CursorYStart float64
	CursorYEnd   float64
}

// Document es el resultado de paginar un pedido: la secuencia ordenada de
// páginas más la posición del pie de totales. Cada línea del pedido aparece
// exactamente una vez, en orden, y ninguna se parte entre dos páginas.
type Document struct {
	Pages []Page
	// FooterPage es el índice (base 0) de la página que lleva el pie de
	// totales; si no entraba en la última página con filas, es una página
	// adicional sin filas.
	FooterPage int
	FooterY    float64
}
