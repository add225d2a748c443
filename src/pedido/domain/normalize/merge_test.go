package normalize

import (
	"testing"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(sku, size string, quantity int, unitPrice int64) entity.LineItem {
	return entity.NewLineItem("Producto "+sku, "Marca", sku, size, quantity, decimal.NewFromInt(unitPrice))
}

func TestMergeSumsQuantityAndTotal(t *testing.T) {
	items := []entity.LineItem{
		lineItem("X", "M", 2, 100),
		lineItem("X", "M", 3, 100),
	}

	merged := Merge(items)

	require.Len(t, merged, 1)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.True(t, merged[0].LineTotal.Equal(decimal.NewFromInt(500)))
}

func TestMergeKeepsFirstSeenOrderAndFields(t *testing.T) {
	first := lineItem("A", "M", 1, 10)
	first.Title = "Título que queda"
	second := lineItem("B", "L", 1, 20)
	third := lineItem("A", "M", 4, 10)
	third.Title = "Título que se descarta"

	merged := Merge([]entity.LineItem{first, second, third})

	require.Len(t, merged, 2)
	assert.Equal(t, "A", merged[0].SKU)
	assert.Equal(t, "Título que queda", merged[0].Title)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, "B", merged[1].SKU)
}

func TestMergeDistinguishesSizes(t *testing.T) {
	merged := Merge([]entity.LineItem{
		lineItem("X", "M", 1, 100),
		lineItem("X", "L", 1, 100),
	})

	assert.Len(t, merged, 2)
}

func TestMergeIsIdempotent(t *testing.T) {
	items := []entity.LineItem{
		lineItem("X", "M", 2, 100),
		lineItem("Y", "S", 1, 50),
		lineItem("X", "M", 3, 100),
		lineItem("X", "L", 1, 100),
	}

	once := Merge(items)
	twice := Merge(once)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].MergeKey(), twice[i].MergeKey())
		assert.Equal(t, once[i].Quantity, twice[i].Quantity)
		assert.True(t, once[i].LineTotal.Equal(twice[i].LineTotal))
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	items := []entity.LineItem{
		lineItem("X", "M", 2, 100),
		lineItem("X", "M", 3, 100),
	}

	_ = Merge(items)

	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(200)))
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Empty(t, Merge(nil))
}
