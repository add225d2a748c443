package normalize

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenObjectSizeList(t *testing.T) {
	raw := RawItem{
		"title": "Campera inflable",
		"brand": "ACME",
		"sku":   "CAMP-01",
		"price": float64(100),
		"sizes": []any{
			map[string]any{"size": "M", "quantity": float64(2)},
			map[string]any{"size": "L", "qty": float64(3), "price": float64(120)},
			map[string]any{"size": "XL", "quantity": float64(1), "total": float64(99.99)},
		},
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 3)

	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(200)))

	// qty como alias de quantity, precio propio del elemento
	assert.Equal(t, 3, items[1].Quantity)
	assert.True(t, items[1].UnitPrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, items[1].LineTotal.Equal(decimal.NewFromInt(360)))

	// total explícito que solo difiere por redondeo se conserva
	assert.True(t, items[2].LineTotal.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, 0, stats.Total())
}

func TestFlattenObjectSizeListSuppliedTotalMismatch(t *testing.T) {
	raw := RawItem{
		"sku":   "X",
		"price": float64(100),
		"sizes": []any{
			map[string]any{"size": "M", "quantity": float64(2), "total": float64(500)},
		},
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	// una discrepancia mayor al redondeo se descarta y recalcula
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 1, stats.Fallbacks[FallbackLineTotal])
}

func TestFlattenStringSizeList(t *testing.T) {
	raw := RawItem{
		"title": "Remera lisa",
		"sku":   "REM-09",
		"price": float64(50),
		"sizes": []any{"S", "M", "L"},
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 3)
	for i, size := range []string{"S", "M", "L"} {
		assert.Equal(t, size, items[i].Size)
		// esta forma no expresa cantidad por talle: siempre 1
		assert.Equal(t, 1, items[i].Quantity)
		assert.True(t, items[i].LineTotal.Equal(decimal.NewFromInt(50)))
	}
	assert.Equal(t, 3, stats.Fallbacks[FallbackStringSizeQty])
}

func TestFlattenSizeQuantityMap(t *testing.T) {
	raw := RawItem{
		"sku":   "PAN-77",
		"price": float64(80),
		"sizeQuantities": map[string]any{
			"38": float64(2),
			"40": float64(1),
			"42": "no-numérico",
		},
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 3)
	// orden determinista por clave
	assert.Equal(t, "38", items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "40", items[1].Size)
	assert.Equal(t, 1, items[1].Quantity)
	// la cantidad no coercionable cae a 0 y queda registrada
	assert.Equal(t, "42", items[2].Size)
	assert.Equal(t, 0, items[2].Quantity)
	assert.Equal(t, 1, stats.Fallbacks[FallbackQuantity])
}

func TestFlattenSingleSize(t *testing.T) {
	raw := RawItem{
		"title":    "Buzo canguro",
		"size":     "M",
		"quantity": float64(2),
		"price":    float64(100),
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(200)))
}

func TestFlattenFallback(t *testing.T) {
	raw := RawItem{
		"title":    "Gorra",
		"sku":      "GOR-1",
		"quantity": float64(3),
		"price":    float64(25),
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	assert.Equal(t, "Unique", items[0].Size)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestFlattenFallbackDefaultsQuantityToOne(t *testing.T) {
	stats := NewStats()
	items := Flatten(RawItem{"sku": "GOR-1"}, ShapeFallback, DefaultConfig(), stats)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.IsZero())
}

func TestFlattenFallbackSizeLabelConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackSizeLabel = "N/A"

	stats := NewStats()
	items := Flatten(RawItem{"sku": "GOR-1"}, ShapeFallback, cfg, stats)

	require.Len(t, items, 1)
	assert.Equal(t, "N/A", items[0].Size)
}

func TestFlattenNestedProductFields(t *testing.T) {
	raw := RawItem{
		"product": map[string]any{
			"title": "Campera anidada",
			"brand": "ACME",
			"sku":   "NEST-1",
			"price": float64(150),
		},
		"title": "título a ignorar",
		"size":  "M",
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	assert.Equal(t, "Campera anidada", items[0].Title)
	assert.Equal(t, "ACME", items[0].Brand)
	assert.Equal(t, "NEST-1", items[0].SKU)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(150)))
}

func TestFlattenPlaceholders(t *testing.T) {
	stats := NewStats()
	items := Flatten(RawItem{"size": "M"}, ShapeSingleSize, DefaultConfig(), stats)

	require.Len(t, items, 1)
	assert.Equal(t, "Sin título", items[0].Title)
	assert.Equal(t, "Sin marca", items[0].Brand)
	assert.Equal(t, "Sin SKU", items[0].SKU)
	assert.Equal(t, 1, stats.Fallbacks[FallbackTitle])
	assert.Equal(t, 1, stats.Fallbacks[FallbackBrand])
	assert.Equal(t, 1, stats.Fallbacks[FallbackSKU])
}

func TestFlattenTruncatesTitle(t *testing.T) {
	raw := RawItem{
		"title": strings.Repeat("a", 80),
		"sku":   "T-1",
		"size":  "M",
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	title := items[0].Title
	assert.Equal(t, 50, len([]rune(title)))
	assert.True(t, strings.HasSuffix(title, "…"))
}

func TestFlattenTruncationIsRuneSafe(t *testing.T) {
	raw := RawItem{
		"title": strings.Repeat("ñ", 80),
		"brand": strings.Repeat("á", 40),
		"sku":   "T-2",
		"size":  "M",
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	assert.True(t, utf8.ValidString(items[0].Title))
	assert.True(t, utf8.ValidString(items[0].Brand))
	assert.Equal(t, 50, len([]rune(items[0].Title)))
	assert.Equal(t, 30, len([]rune(items[0].Brand)))
}

func TestCoercionNeverPanics(t *testing.T) {
	raw := RawItem{
		"sku":      "C-1",
		"size":     "M",
		"quantity": math.NaN(),
		"price":    math.Inf(1),
	}

	stats := NewStats()
	items := Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	require.Len(t, items, 1)
	// NaN e infinito caen al default documentado y quedan contados
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.IsZero())
	assert.Equal(t, 1, stats.Fallbacks[FallbackQuantity])
	assert.Equal(t, 1, stats.Fallbacks[FallbackPrice])
}

func TestFlattenDoesNotMutateInput(t *testing.T) {
	raw := RawItem{
		"title": "Original",
		"sku":   "M-1",
		"sizes": []any{map[string]any{"size": "M", "quantity": float64(2)}},
	}

	stats := NewStats()
	_ = Flatten(raw, DetectShape(raw), DefaultConfig(), stats)

	assert.Equal(t, "Original", raw["title"])
	sizes := raw["sizes"].([]any)
	assert.Equal(t, float64(2), sizes[0].(map[string]any)["quantity"])
}
