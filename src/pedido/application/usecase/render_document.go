package usecase

import (
	"context"
	"fmt"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/layout"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/render"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/infrastructure/pdf"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/port"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/infrastructure/cache"
)

// RenderDocumentUseCase caso de uso para renderizar un pedido persistido a
// su documento imprimible
type RenderDocumentUseCase struct {
	orderRepo port.OrderRepository
	docCache  *cache.DocumentCache
	constants layout.Constants
}

// NewRenderDocumentUseCase crea una nueva instancia del caso de uso.
// docCache puede ser nil: cada descarga renderiza de nuevo.
func NewRenderDocumentUseCase(orderRepo port.OrderRepository, docCache *cache.DocumentCache, constants layout.Constants) *RenderDocumentUseCase {
	return &RenderDocumentUseCase{
		orderRepo: orderRepo,
		docCache:  docCache,
		constants: constants,
	}
}

// Execute busca el pedido, lo pagina y renderiza a PDF. Los bytes quedan
// cacheados por ID porque el pedido canónico es inmutable.
func (uc *RenderDocumentUseCase) Execute(ctx context.Context, orderID string) ([]byte, error) {
	if uc.docCache != nil {
		if doc, ok := uc.docCache.Get(orderID); ok {
			return doc, nil
		}
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sink := pdf.NewSink(uc.constants)
	render.Document(order, uc.constants, sink)

	doc, err := sink.Bytes()
	if err != nil {
		return nil, fmt.Errorf("error rendering order %s: %w", orderID, err)
	}

	if uc.docCache != nil {
		uc.docCache.Put(orderID, doc)
	}

	return doc, nil
}
