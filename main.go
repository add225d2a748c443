package main

import (
	"database/sql"
	"log"
	"os"

	apiConfig "github.com/SaGaSaBo/Catalogo-Cti-sub000/src/api/config"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/layout"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/usecase"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/normalize"
	pedidoCache "github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/infrastructure/cache"
	pedidoController "github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/infrastructure/controller"
	pedidoPersistence "github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/infrastructure/persistence"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/shared/infrastructure/metrics"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Pedidos Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for Pedidos service")
		metrics.Register()
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Pedidos service")
	}

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pedidos_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (normalización y preview disponibles)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (normalización y preview disponibles)")
			db = nil
		} else {
			log.Printf("✅ Conexión a %s establecida con éxito", dbName)
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulo Pedido
	setupPedidoModule(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Pedidos Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupPedidoModule configura el módulo Pedido y el de documentos
func setupPedidoModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Pedido...")

	// Constantes de normalización: la etiqueta de talle por defecto es
	// preferencia del deployment ("Unique" o "N/A")
	normCfg := normalize.DefaultConfig()
	normCfg.FallbackSizeLabel = getEnv("FALLBACK_SIZE_LABEL", normCfg.FallbackSizeLabel)

	layoutConstants := layout.DefaultConstants()

	// Crear repositorio (solo con DB)
	var orderRepo *pedidoPersistence.OrderPostgresRepository
	if db != nil {
		orderRepo = pedidoPersistence.NewOrderPostgresRepository(db)
	}

	// Cache de documentos renderizados
	docCache := pedidoCache.NewDocumentCache()

	// Crear casos de uso
	var createOrderUC *usecase.CreateOrderUseCase
	var getOrderUC *usecase.GetOrderUseCase
	var listOrdersUC *usecase.ListOrdersUseCase
	var renderDocumentUC *usecase.RenderDocumentUseCase
	if orderRepo != nil {
		createOrderUC = usecase.NewCreateOrderUseCase(orderRepo, normCfg)
		getOrderUC = usecase.NewGetOrderUseCase(orderRepo)
		listOrdersUC = usecase.NewListOrdersUseCase(orderRepo)
		renderDocumentUC = usecase.NewRenderDocumentUseCase(orderRepo, docCache, layoutConstants)
	} else {
		// Fallback sin repo (solo para desarrollo sin DB)
		createOrderUC = usecase.NewCreateOrderUseCase(nil, normCfg)
	}

	previewDocumentUC := usecase.NewPreviewDocumentUseCase(normCfg, layoutConstants)

	// Crear controladores
	orderCtrl := pedidoController.NewOrderController(createOrderUC, getOrderUC, listOrdersUC)
	documentCtrl := pedidoController.NewDocumentController(renderDocumentUC, previewDocumentUC)

	// Registrar rutas
	orderCtrl.RegisterRoutes(router)
	documentCtrl.RegisterRoutes(router)
}
