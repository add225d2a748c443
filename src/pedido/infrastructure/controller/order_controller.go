package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/request"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/usecase"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/shared/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// OrderController maneja las peticiones HTTP para pedidos
type OrderController struct {
	createOrderUC *usecase.CreateOrderUseCase
	getOrderUC    *usecase.GetOrderUseCase
	listOrdersUC  *usecase.ListOrdersUseCase
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createOrderUC *usecase.CreateOrderUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
) *OrderController {
	return &OrderController{
		createOrderUC: createOrderUC,
		getOrderUC:    getOrderUC,
		listOrdersUC:  listOrdersUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", c.ListOrders)
		orders.GET("/:order_id", c.GetOrder)
		orders.POST("", c.CreateOrder)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  GET    /api/v1/orders")
	log.Println("  GET    /api/v1/orders/:order_id")
	log.Println("  POST   /api/v1/orders")
}

// CreateOrder normaliza un payload crudo de pedido y lo persiste
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	resp, stats, err := c.createOrderUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailures.Inc()
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": ve.Error(),
				"field": ve.Field,
			})
			return
		}

		log.Printf("Error creating order: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not create order",
		})
		return
	}

	metrics.OrdersNormalized.Inc()
	metrics.RecordFallbacks(resp.CoercionFallbacks)
	if stats.Total() > 0 {
		log.Printf("Order %s normalized with %d coercion fallbacks", resp.OrderID, stats.Total())
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetOrder retorna un pedido canónico por ID
func (c *OrderController) GetOrder(ctx *gin.Context) {
	if c.getOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "order lookup not available (database not configured)",
		})
		return
	}

	orderID := ctx.Param("order_id")

	resp, err := c.getOrderUC.Execute(ctx.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, entity.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "order not found",
			})
			return
		}

		log.Printf("Error getting order %s: %v", orderID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not get order",
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListOrders lista los pedidos con paginación
func (c *OrderController) ListOrders(ctx *gin.Context) {
	if c.listOrdersUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "order listing not available (database not configured)",
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	resp, err := c.listOrdersUC.Execute(ctx.Request.Context(), page, pageSize)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not list orders",
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
