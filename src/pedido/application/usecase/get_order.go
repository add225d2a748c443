package usecase

import (
	"context"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/response"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/port"
)

// GetOrderUseCase caso de uso para obtener un pedido por ID
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute busca el pedido; entity.ErrOrderNotFound si no existe
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}
