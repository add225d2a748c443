package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConstants arma una página chica de números redondos: el contenido va
// de Y=30 (margen 10 + encabezado 20) a Y=90, o sea seis filas de altura 10.
func testConstants() Constants {
	return Constants{
		PageWidth:          200,
		PageHeight:         100,
		MarginLeft:         10,
		MarginRight:        10,
		MarginTop:          10,
		MarginBottom:       10,
		HeaderHeight:       20,
		FooterHeight:       10,
		LineHeight:         10,
		MinRowHeight:       10,
		ProductColumnChars: 100,
	}
}

func testOrder(t *testing.T, rows int) *entity.Order {
	t.Helper()
	items := make([]entity.LineItem, 0, rows)
	for i := 0; i < rows; i++ {
		items = append(items, entity.NewLineItem(
			fmt.Sprintf("Producto %d", i),
			"Marca",
			fmt.Sprintf("SKU-%03d", i),
			"M",
			1,
			decimal.NewFromInt(100),
		))
	}
	order, err := entity.NewOrder(entity.Customer{
		Name:  "Cliente Mayorista",
		Email: "cliente@example.com",
	}, items, decimal.Zero)
	require.NoError(t, err)
	return order
}

func allRows(doc Document) []entity.LineItem {
	var rows []entity.LineItem
	for _, page := range doc.Pages {
		rows = append(rows, page.Rows...)
	}
	return rows
}

func TestPaginateExactFit(t *testing.T) {
	c := testConstants()
	doc := Paginate(testOrder(t, 6), c)

	require.Len(t, doc.Pages, 1)
	assert.Len(t, doc.Pages[0].Rows, 6)
	assert.Equal(t, 30.0, doc.Pages[0].CursorYStart)
	assert.Equal(t, 90.0, doc.Pages[0].CursorYEnd)
}

// La fila N+1 de una página que entra exactamente N abre una página nueva
// con el encabezado re-emitido antes de esa fila.
func TestPaginateBoundaryStartsNewPage(t *testing.T) {
	c := testConstants()
	doc := Paginate(testOrder(t, 7), c)

	require.Len(t, doc.Pages, 2)
	assert.Len(t, doc.Pages[0].Rows, 6)
	assert.Len(t, doc.Pages[1].Rows, 1)
	// el cursor de la página nueva arranca debajo del encabezado
	assert.Equal(t, 30.0, doc.Pages[1].CursorYStart)
	assert.Equal(t, 2, doc.Pages[1].Index)
	assert.Equal(t, "SKU-006", doc.Pages[1].Rows[0].SKU)
}

func TestPaginateNoRowSplitting(t *testing.T) {
	c := testConstants()
	order := testOrder(t, 25)
	doc := Paginate(order, c)

	rows := allRows(doc)
	require.Len(t, rows, len(order.LineItems))
	for i, row := range rows {
		assert.Equal(t, order.LineItems[i].SKU, row.SKU)
	}
	for _, page := range doc.Pages[:len(doc.Pages)-1] {
		if len(page.Rows) > 0 {
			assert.LessOrEqual(t, page.CursorYEnd, c.ContentBottom())
		}
	}
}

func TestPaginateWrappedTitleRowsAreTaller(t *testing.T) {
	c := testConstants()
	c.ProductColumnChars = 10

	// 25 runas a 10 por línea: 3 líneas, altura 30
	title := strings.Repeat("x", 25)
	assert.Equal(t, 3, c.TitleLines(title))
	assert.Equal(t, 30.0, c.RowHeight(title))
	assert.Equal(t, c.MinRowHeight, c.RowHeight("corto"))
}

// Una fila más alta que la página completa queda sola en su página,
// desbordando, sin loop infinito ni filas descartadas.
func TestPaginateOversizedRowGetsOwnPage(t *testing.T) {
	c := testConstants()
	c.ProductColumnChars = 10

	items := []entity.LineItem{
		entity.NewLineItem("normal", "Marca", "SKU-A", "M", 1, decimal.NewFromInt(10)),
		entity.NewLineItem(strings.Repeat("x", 100), "Marca", "SKU-B", "M", 1, decimal.NewFromInt(10)),
		entity.NewLineItem("normal", "Marca", "SKU-C", "M", 1, decimal.NewFromInt(10)),
	}
	order, err := entity.NewOrder(entity.Customer{Name: "C", Email: "c@d.com"}, items, decimal.Zero)
	require.NoError(t, err)

	doc := Paginate(order, c)

	require.Len(t, doc.Pages, 3)
	assert.Equal(t, "SKU-A", doc.Pages[0].Rows[0].SKU)
	require.Len(t, doc.Pages[1].Rows, 1)
	assert.Equal(t, "SKU-B", doc.Pages[1].Rows[0].SKU)
	assert.Greater(t, doc.Pages[1].CursorYEnd, c.ContentBottom())
	assert.Equal(t, "SKU-C", doc.Pages[2].Rows[0].SKU)

	require.Len(t, allRows(doc), 3)
}

func TestPaginateFooterOnSamePage(t *testing.T) {
	c := testConstants()
	doc := Paginate(testOrder(t, 5), c)

	require.Len(t, doc.Pages, 1)
	assert.Equal(t, 0, doc.FooterPage)
	assert.Equal(t, 80.0, doc.FooterY)
}

// El pie de totales tiene su propio chequeo de margen: si no entra debajo de
// la última fila, se abre una página solo para él.
func TestPaginateFooterOverflowsToOwnPage(t *testing.T) {
	c := testConstants()
	doc := Paginate(testOrder(t, 6), c)

	require.Len(t, doc.Pages, 2)
	assert.Equal(t, 1, doc.FooterPage)
	assert.Empty(t, doc.Pages[1].Rows)
	assert.Equal(t, 30.0, doc.FooterY)
}

func TestPaginatePageIndexesAreSequential(t *testing.T) {
	doc := Paginate(testOrder(t, 20), testConstants())

	for i, page := range doc.Pages {
		assert.Equal(t, i+1, page.Index)
	}
}
