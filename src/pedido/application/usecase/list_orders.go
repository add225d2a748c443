package usecase

import (
	"context"
	"math"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/response"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/port"
)

// ListOrdersUseCase caso de uso para listar pedidos con paginación
type ListOrdersUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute ejecuta el listado de pedidos
func (uc *ListOrdersUseCase) Execute(ctx context.Context, page, pageSize int) (*response.ListOrdersResponse, error) {
	// Valores por defecto
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	orders, totalCount, err := uc.orderRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]response.OrderListItem, 0, len(orders))
	for _, order := range orders {
		items = append(items, response.OrderListItem{
			OrderID:       order.OrderID,
			OrderNumber:   order.OrderNumber,
			CustomerName:  order.Customer.Name,
			ComputedTotal: order.ComputedTotal,
			ItemCount:     order.ItemCount,
			CreatedAt:     order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))

	return &response.ListOrdersResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
