package port

import (
	"context"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
)

// OrderRepository define el contrato de persistencia para pedidos canónicos.
// La normalización nunca persiste por sí misma: el llamador decide cuándo y
// dónde guardar.
type OrderRepository interface {
	// Save persiste un pedido con sus líneas de forma atómica
	Save(ctx context.Context, order *entity.Order) error

	// FindByID busca un pedido por su ID
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)

	// List retorna una página de pedidos (más recientes primero) y el total
	List(ctx context.Context, page, pageSize int) ([]*entity.Order, int, error)
}
