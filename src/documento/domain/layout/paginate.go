package layout

import (
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
)

// state modela la máquina de estados de la paginación. El cursor Y no viaja
// imperativo entre loops anidados: cada transición queda explícita y el
// algoritmo de diagramado es testeable sin renderizar nada.
type state int

const (
	stateAwaitingHeader state = iota
	statePlacingRow
	statePageFull
	stateDone
)

type paginator struct {
	c       Constants
	state   state
	pages   []Page
	cursorY float64
}

// Paginate diagrama las líneas fusionadas de un pedido en páginas de altura
// fija. Antes de colocar cada fila calcula su altura requerida; si no entra
// sobre el margen inferior se cierra la página, se abre una nueva con su
// encabezado y la fila se coloca allí. El encabezado precede a la primera
// fila de toda página, incluida la primera. El pie de totales va una sola
// vez debajo de la última fila, pero con su propio chequeo de margen: si no
// entra, se abre una página solo para él.
//
// Nunca falla sobre un pedido válido: una fila más alta que una página
// completa queda sola en su página, sin dividirse ni descartarse.
func Paginate(order *entity.Order, c Constants) Document {
	p := &paginator{c: c, state: stateAwaitingHeader}
	p.openPage()

	for _, row := range order.LineItems {
		p.place(row)
	}

	p.state = stateDone
	return p.finish()
}

// openPage cierra la página actual (si la hay), abre la siguiente y deja el
// cursor debajo del encabezado re-emitido
func (p *paginator) openPage() {
	p.cursorY = p.c.MarginTop + p.c.HeaderHeight
	p.pages = append(p.pages, Page{
		Index:        len(p.pages) + 1,
		CursorYStart: p.cursorY,
		CursorYEnd:   p.cursorY,
	})
	p.state = statePlacingRow
}

func (p *paginator) place(row entity.LineItem) {
	h := p.c.RowHeight(row.Title)
	if p.cursorY+h > p.c.ContentBottom() && len(p.current().Rows) > 0 {
		p.state = statePageFull
		p.openPage()
	}

	// Si la fila sigue sin entrar en una página recién abierta, se coloca
	// igual: sola y desbordando, nunca dividida.
	cur := p.current()
	cur.Rows = append(cur.Rows, row)
	p.cursorY += h
	cur.CursorYEnd = p.cursorY
}

func (p *paginator) current() *Page {
	return &p.pages[len(p.pages)-1]
}

func (p *paginator) finish() Document {
	footerPage := len(p.pages) - 1
	footerY := p.cursorY

	if p.cursorY+p.c.FooterHeight > p.c.ContentBottom() {
		p.openPage()
		footerPage = len(p.pages) - 1
		footerY = p.cursorY
	}

	return Document{
		Pages:      p.pages,
		FooterPage: footerPage,
		FooterY:    footerY,
	}
}
