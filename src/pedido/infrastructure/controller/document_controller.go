package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/request"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/usecase"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/shared/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// DocumentController maneja las peticiones HTTP para documentos imprimibles
type DocumentController struct {
	renderDocumentUC  *usecase.RenderDocumentUseCase
	previewDocumentUC *usecase.PreviewDocumentUseCase
}

// NewDocumentController crea una nueva instancia del controlador
func NewDocumentController(
	renderDocumentUC *usecase.RenderDocumentUseCase,
	previewDocumentUC *usecase.PreviewDocumentUseCase,
) *DocumentController {
	return &DocumentController{
		renderDocumentUC:  renderDocumentUC,
		previewDocumentUC: previewDocumentUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *DocumentController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/orders/:order_id/document", c.RenderDocument)
	router.POST("/documents/preview", c.PreviewDocument)

	log.Println("Rutas Document disponibles:")
	log.Println("  GET    /api/v1/orders/:order_id/document")
	log.Println("  POST   /api/v1/documents/preview")
}

// RenderDocument renderiza un pedido persistido a PDF
func (c *DocumentController) RenderDocument(ctx *gin.Context) {
	if c.renderDocumentUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "document rendering not available (database not configured)",
		})
		return
	}

	orderID := ctx.Param("order_id")

	doc, err := c.renderDocumentUC.Execute(ctx.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, entity.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "order not found",
			})
			return
		}

		log.Printf("Error rendering document for order %s: %v", orderID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not render document",
		})
		return
	}

	metrics.DocumentsRendered.Inc()
	ctx.Data(http.StatusOK, "application/pdf", doc)
}

// PreviewDocument normaliza y renderiza un payload crudo sin persistirlo
func (c *DocumentController) PreviewDocument(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	doc, stats, err := c.previewDocumentUC.Execute(ctx.Request.Context(), &req)
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

		log.Printf("Error rendering preview: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not render preview",
		})
		return
	}

	metrics.DocumentsRendered.Inc()
	if stats.Total() > 0 {
		log.Printf("Preview rendered with %d coercion fallbacks", stats.Total())
	}

	ctx.Data(http.StatusOK, "application/pdf", doc)
}
