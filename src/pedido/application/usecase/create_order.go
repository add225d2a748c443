package usecase

import (
	"context"
	"fmt"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/request"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/response"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/normalize"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/port"

	"github.com/shopspring/decimal"
)

// CreateOrderUseCase caso de uso para crear un pedido canónico
type CreateOrderUseCase struct {
	orderRepo port.OrderRepository
	cfg       normalize.Config
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso.
// orderRepo puede ser nil (arranque sin DB): el pedido se normaliza igual
// pero no se persiste.
func NewCreateOrderUseCase(orderRepo port.OrderRepository, cfg normalize.Config) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		cfg:       cfg,
	}
}

// Execute normaliza el payload crudo y persiste el pedido canónico.
// Un fallo de validación del cliente se propaga como *entity.ValidationError
// sin envolver, para que el controller pueda mapearlo a 400.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req *request.CreateOrderRequest) (*response.CreateOrderResponse, *normalize.Stats, error) {
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

	persisted := false
	if uc.orderRepo != nil {
		if err := uc.orderRepo.Save(ctx, order); err != nil {
			return nil, nil, fmt.Errorf("error saving order: %w", err)
		}
		persisted = true
	}

	resp := &response.CreateOrderResponse{
		OrderResponse: ToOrderResponse(order),
		Persisted:     persisted,
	}
	if stats.Total() > 0 {
		resp.CoercionFallbacks = make(map[string]int, len(stats.Fallbacks))
		for reason, n := range stats.Fallbacks {
			resp.CoercionFallbacks[string(reason)] = n
		}
	}

	return resp, stats, nil
}

// ToOrderResponse convierte un pedido canónico a su DTO de respuesta
func ToOrderResponse(order *entity.Order) response.OrderResponse {
	items := make([]response.LineItemResponse, 0, len(order.LineItems))
	for _, li := range order.LineItems {
		items = append(items, response.LineItemResponse{
			ID:        li.ID,
			SKU:       li.SKU,
			Title:     li.Title,
			Brand:     li.Brand,
			Size:      li.Size,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			LineTotal: li.LineTotal,
		})
	}

	return response.OrderResponse{
		OrderID:       order.OrderID,
		OrderNumber:   order.OrderNumber,
		Customer:      response.CustomerResponse(order.Customer),
		Items:         items,
		DeclaredTotal: order.DeclaredTotal,
		ComputedTotal: order.ComputedTotal,
		ItemCount:     order.ItemCount,
		CreatedAt:     order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
