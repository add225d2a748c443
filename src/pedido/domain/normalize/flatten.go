package normalize

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"

	"github.com/shopspring/decimal"
)

// totalTolerance es la diferencia máxima (por redondeo) admitida entre un
// total explícito y el subtotal recalculado antes de descartar el explícito.
var totalTolerance = decimal.RequireFromString("0.01")

// Flatten expande un item crudo, según su forma detectada, en cero o más
// líneas canónicas. No comparte estado mutable con la entrada ni la modifica.
func Flatten(raw RawItem, shape Shape, cfg Config, stats *Stats) []entity.LineItem {
	title := resolveText(raw, "title", cfg.TitlePlaceholder, cfg.MaxTitleLen, stats, FallbackTitle)
	brand := resolveText(raw, "brand", cfg.BrandPlaceholder, cfg.MaxBrandLen, stats, FallbackBrand)
	sku := resolveText(raw, "sku", cfg.SKUPlaceholder, 0, stats, FallbackSKU)
	itemPrice := coercePrice(fieldValue(raw, "price"), stats)

	var items []entity.LineItem

	switch shape {
	case ShapeObjectSizeList:
		sizes, _ := raw["sizes"].([]any)
		for _, el := range sizes {
			obj, ok := el.(map[string]any)
			if !ok {
				stats.count(FallbackMalformedSize)
				continue
			}
			size := stringOr(obj["size"], cfg.FallbackSizeLabel)
			qv := obj["quantity"]
			if qv == nil {
				qv = obj["qty"]
			}
			qty := coerceQuantity(qv, 0, stats)
			price := itemPrice
			if pv, present := obj["price"]; present && pv != nil {
				price = coercePrice(pv, stats)
			}
			li := entity.NewLineItem(title, brand, sku, size, qty, price)
			applySuppliedTotal(&li, obj["total"], stats)
			items = append(items, li)
		}

	case ShapeStringSizeList:
		sizes, _ := raw["sizes"].([]any)
		for _, el := range sizes {
			size, ok := el.(string)
			if !ok {
				stats.count(FallbackMalformedSize)
				continue
			}
			// Esta forma no puede expresar cantidad por talle: siempre 1.
			// Se registra el default para que la ambigüedad quede visible.
			stats.count(FallbackStringSizeQty)
			items = append(items, entity.NewLineItem(title, brand, sku, size, 1, itemPrice))
		}

	case ShapeSizeQuantityMap:
		sq, _ := raw["sizeQuantities"].(map[string]any)
		// Orden determinista: las claves de un mapa no conservan el orden
		// de inserción del payload original.
		keys := make([]string, 0, len(sq))
		for k := range sq {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, size := range keys {
			qty := coerceQuantity(sq[size], 0, stats)
			items = append(items, entity.NewLineItem(title, brand, sku, size, qty, itemPrice))
		}

	case ShapeSingleSize:
		size, _ := raw["size"].(string)
		qty := coerceQuantity(raw["quantity"], 1, stats)
		li := entity.NewLineItem(title, brand, sku, size, qty, itemPrice)
		applySuppliedTotal(&li, raw["total"], stats)
		items = append(items, li)

	default: // ShapeFallback
		qty := coerceQuantity(raw["quantity"], 1, stats)
		li := entity.NewLineItem(title, brand, sku, cfg.FallbackSizeLabel, qty, itemPrice)
		applySuppliedTotal(&li, raw["total"], stats)
		items = append(items, li)
	}

	return items
}

// applySuppliedTotal aplica un total explícito del payload si solo difiere
// del subtotal recalculado por redondeo; una discrepancia mayor se registra
// y el subtotal queda recalculado desde precio y cantidad.
func applySuppliedTotal(li *entity.LineItem, v any, stats *Stats) {
	if v == nil {
		return
	}
	supplied, ok := toNumber(v)
	if !ok {
		stats.count(FallbackLineTotal)
		return
	}
	suppliedDec := decimal.NewFromFloat(supplied)
	if suppliedDec.Sub(li.LineTotal).Abs().LessThanOrEqual(totalTolerance) {
		li.LineTotal = suppliedDec
		return
	}
	stats.count(FallbackLineTotal)
}

// fieldValue resuelve un campo prefiriendo el producto anidado sobre el
// campo homónimo a nivel de item
func fieldValue(raw RawItem, key string) any {
	if product, ok := raw["product"].(map[string]any); ok {
		if v, present := product[key]; present && v != nil {
			return v
		}
	}
	if v, present := raw[key]; present && v != nil {
		return v
	}
	return nil
}

// resolveText resuelve un campo de texto con el fallback de tres niveles
// (product.<campo> → campo a nivel de item → placeholder) y lo trunca al
// máximo configurado. max <= 0 desactiva el truncado.
func resolveText(raw RawItem, key, placeholder string, max int, stats *Stats, reason FallbackReason) string {
	v := fieldValue(raw, key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		stats.count(reason)
		return placeholder
	}
	if max > 0 {
		return truncateText(s, max)
	}
	return s
}

// truncateText corta s a max runas terminando en elipsis. Opera sobre runas
// para no partir un carácter multibyte por la mitad.
func truncateText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// toNumber coerciona los valores numéricos que puede traer un payload JSON
// decodificado. NaN e infinitos se rechazan igual que los no numéricos.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return toNumber(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return toNumber(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return toNumber(f)
	}
	return 0, false
}

// coerceQuantity coerciona una cantidad a entero no negativo. Un valor
// ausente usa el default sin registrar evento; un valor presente pero no
// coercionable (o negativo) usa el default y se cuenta.
func coerceQuantity(v any, def int, stats *Stats) int {
	if v == nil {
		return def
	}
	f, ok := toNumber(v)
	if !ok || f < 0 {
		stats.count(FallbackQuantity)
		return def
	}
	return int(f)
}

// coercePrice coerciona un precio unitario a decimal no negativo
func coercePrice(v any, stats *Stats) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	f, ok := toNumber(v)
	if !ok || f < 0 {
		stats.count(FallbackPrice)
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
