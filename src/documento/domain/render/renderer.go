package render

import (
	"fmt"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/layout"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"

	"github.com/shopspring/decimal"
)

// columns ubica cada columna de la grilla de líneas. Se deriva de las
// constantes de layout, nunca de estado global.
type columns struct {
	sku     float64 // borde izquierdo
	product float64 // borde izquierdo
	size    float64 // borde izquierdo
	qty     float64 // borde derecho
	unit    float64 // borde derecho
	total   float64 // borde derecho
	right   float64 // borde derecho de la grilla
}

func buildColumns(c layout.Constants) columns {
	w := c.ContentWidth()
	left := c.MarginLeft
	return columns{
		sku:     left,
		product: left + w*0.16,
		size:    left + w*0.58,
		qty:     left + w*0.76,
		unit:    left + w*0.88,
		total:   left + w,
		right:   left + w,
	}
}

// Renderer recorre un documento ya paginado y emite las instrucciones de
// dibujo sobre un Sink. Es un consumidor puro del diagramado: no contiene
// lógica de negocio sobre cantidades ni totales, toda la aritmética llega
// resuelta en el pedido.
type Renderer struct {
	c    layout.Constants
	cols columns
}

// NewRenderer crea un renderer para unas constantes de layout
func NewRenderer(c layout.Constants) *Renderer {
	return &Renderer{c: c, cols: buildColumns(c)}
}

// Document pagina un pedido canónico y lo renderiza sobre el sink en una
// sola operación. Es el punto de entrada del módulo documento.
func Document(order *entity.Order, c layout.Constants, sink Sink) layout.Document {
	doc := layout.Paginate(order, c)
	NewRenderer(c).Render(order, doc, sink)
	return doc
}

// Render dibuja todas las páginas del documento en orden
func (r *Renderer) Render(order *entity.Order, doc layout.Document, sink Sink) {
	for i, page := range doc.Pages {
		sink.AddPage()
		r.drawHeader(order, page, doc, sink)
		r.drawRows(page, sink)
		if i == doc.FooterPage {
			r.drawFooter(order, doc.FooterY, sink)
		}
	}
}

func (r *Renderer) drawHeader(order *entity.Order, page layout.Page, doc layout.Document, sink Sink) {
	c := r.c
	y := c.MarginTop + c.LineHeight

	sink.Text(c.MarginLeft, y, "NOTA DE PEDIDO")
	sink.TextRight(r.cols.right, y, order.OrderNumber)

	y += c.LineHeight
	sink.Text(c.MarginLeft, y, "Cliente: "+order.Customer.Name)
	sink.TextRight(r.cols.right, y, order.CreatedAt.Format("02/01/2006"))

	y += c.LineHeight
	contact := order.Customer.Email
	if order.Customer.Phone != "" {
		contact += " / " + order.Customer.Phone
	}
	sink.Text(c.MarginLeft, y, contact)

	sink.TextRight(r.cols.right, y, fmt.Sprintf("Página %d de %d", page.Index, len(doc.Pages)))

	// Banda de encabezados de columna, pegada al inicio de las filas
	bandTop := page.CursorYStart - c.LineHeight - 4
	sink.Rect(c.MarginLeft, bandTop, c.ContentWidth(), c.LineHeight+4)

	labelY := page.CursorYStart - 6
	sink.Text(r.cols.sku+2, labelY, "SKU")
	sink.Text(r.cols.product+2, labelY, "Producto")
	sink.Text(r.cols.size+2, labelY, "Talle")
	sink.TextRight(r.cols.qty, labelY, "Cant.")
	sink.TextRight(r.cols.unit, labelY, "Precio")
	sink.TextRight(r.cols.total, labelY, "Total")
}

func (r *Renderer) drawRows(page layout.Page, sink Sink) {
	c := r.c
	y := page.CursorYStart

	for _, row := range page.Rows {
		baseline := y + c.LineHeight

		sink.Text(r.cols.sku+2, baseline, row.SKU)
		sink.Text(r.cols.size+2, baseline, row.Size)
		sink.TextRight(r.cols.qty, baseline, fmt.Sprintf("%d", row.Quantity))
		sink.TextRight(r.cols.unit, baseline, money(row.UnitPrice))
		sink.TextRight(r.cols.total, baseline, money(row.LineTotal))

		lineY := baseline
		for _, line := range wrapTitle(row.Title, c.ProductColumnChars) {
			sink.Text(r.cols.product+2, lineY, line)
			lineY += c.LineHeight
		}

		y += c.RowHeight(row.Title)
	}
}

func (r *Renderer) drawFooter(order *entity.Order, footerY float64, sink Sink) {
	c := r.c
	sink.Line(c.MarginLeft, footerY+4, r.cols.right, footerY+4)

	baseline := footerY + 4 + c.LineHeight
	sink.Text(c.MarginLeft, baseline, fmt.Sprintf("Líneas: %d    Unidades: %d", order.TotalItems(), order.TotalUnits()))
	sink.TextRight(r.cols.unit, baseline, "TOTAL")
	sink.TextRight(r.cols.total, baseline, money(order.ComputedTotal))
}

// wrapTitle corta el título en segmentos del ancho de columna, en runas
func wrapTitle(title string, width int) []string {
	if width <= 0 {
		return []string{title}
	}
	runes := []rune(title)
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	return append(lines, string(runes))
}

func money(d decimal.Decimal) string {
	return "$ " + d.StringFixed(2)
}
