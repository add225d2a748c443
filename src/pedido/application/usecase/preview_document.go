package usecase

import (
	"context"
	"fmt"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/layout"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/domain/render"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/documento/infrastructure/pdf"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/request"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/normalize"

	"github.com/shopspring/decimal"
)

// PreviewDocumentUseCase caso de uso para normalizar y renderizar en una
// sola pasada, sin persistir (vista previa de impresión)
type PreviewDocumentUseCase struct {
	cfg       normalize.Config
	constants layout.Constants
}

// NewPreviewDocumentUseCase crea una nueva instancia del caso de uso
func NewPreviewDocumentUseCase(cfg normalize.Config, constants layout.Constants) *PreviewDocumentUseCase {
	return &PreviewDocumentUseCase{
		cfg:       cfg,
		constants: constants,
	}
}

// Execute normaliza el payload crudo y devuelve el PDF resultante junto con
// el diagnóstico de coerciones. Nada se guarda.
func (uc *PreviewDocumentUseCase) Execute(ctx context.Context, req *request.CreateOrderRequest) ([]byte, *normalize.Stats, error) {
	customer := entity.Customer{
		Name:  req.Customer.Name,
		Email: req.Customer.Email,
		Phone: req.Customer.Phone,
	}

	rawItems := make([]normalize.RawItem, 0, len(req.Items))
	for _, item := range req.Items {
		rawItems = append(rawItems, normalize.RawItem(item))
	}

	order, stats, err := normalize.Order(customer, rawItems, decimal.NewFromFloat(req.DeclaredTotal), uc.cfg)
	if err != nil {
		return nil, nil, err
	}

	sink := pdf.NewSink(uc.constants)
	render.Document(order, uc.constants, sink)

	doc, err := sink.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("error rendering preview: %w", err)
	}

	return doc, stats, nil
}
