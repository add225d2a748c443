package normalize

// Config agrupa las constantes de normalización que antes vivían dispersas
// por los llamadores: etiqueta de talle por defecto, placeholders de texto y
// límites de truncado. Se pasa explícitamente, nunca se lee de estado global.
type Config struct {
	// FallbackSizeLabel es el talle asignado a items sin talle ("Unique" o
	// "N/A" según preferencia de locale del deployment).
	FallbackSizeLabel string

	TitlePlaceholder string
	BrandPlaceholder string
	SKUPlaceholder   string

	// Límites de truncado de texto libre (en runas, con marcador de elipsis)
	MaxTitleLen int
	MaxBrandLen int
}

// DefaultConfig retorna la configuración por defecto de normalización
func DefaultConfig() Config {
	return Config{
		FallbackSizeLabel: "Unique",
		TitlePlaceholder:  "Sin título",
		BrandPlaceholder:  "Sin marca",
		SKUPlaceholder:    "Sin SKU",
		MaxTitleLen:       50,
		MaxBrandLen:       30,
	}
}
