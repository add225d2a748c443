package usecase

import (
	"context"
	"testing"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/application/request"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"
	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepository guarda los pedidos en memoria para los tests
type fakeOrderRepository struct {
	saved []*entity.Order
}

func (r *fakeOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	r.saved = append(r.saved, order)
	return nil
}

func (r *fakeOrderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	for _, order := range r.saved {
		if order.OrderID == orderID {
			return order, nil
		}
	}
	return nil, entity.ErrOrderNotFound
}

func (r *fakeOrderRepository) List(ctx context.Context, page, pageSize int) ([]*entity.Order, int, error) {
	return r.saved, len(r.saved), nil
}

func validRequest() *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		Customer: request.CustomerRequest{
			Name:  "Comercial Andina SRL",
			Email: "compras@andina.example.com",
		},
		Items: []map[string]any{
			{"sku": "X", "size": "M", "quantity": float64(2), "price": float64(100)},
			{"sku": "X", "size": "M", "quantity": float64(3), "price": float64(100)},
		},
		DeclaredTotal: 500,
	}
}

func TestCreateOrderPersistsCanonicalOrder(t *testing.T) {
	repo := &fakeOrderRepository{}
	uc := NewCreateOrderUseCase(repo, normalize.DefaultConfig())

	resp, stats, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.True(t, resp.Persisted)
	assert.Equal(t, 1, resp.ItemCount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, "500", resp.ComputedTotal.String())
	assert.Equal(t, 0, stats.Total())
	assert.Equal(t, repo.saved[0].OrderID, resp.OrderID)
}

func TestCreateOrderWithoutRepository(t *testing.T) {
	uc := NewCreateOrderUseCase(nil, normalize.DefaultConfig())

	resp, _, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Persisted)
	assert.NotEmpty(t, resp.OrderNumber)
}

func TestCreateOrderPropagatesValidationError(t *testing.T) {
	repo := &fakeOrderRepository{}
	uc := NewCreateOrderUseCase(repo, normalize.DefaultConfig())

	req := validRequest()
	req.Customer.Email = "no-es-email"

	_, _, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.True(t, entity.IsValidationError(err))
	assert.Empty(t, repo.saved)
}

func TestCreateOrderReportsCoercionFallbacks(t *testing.T) {
	uc := NewCreateOrderUseCase(nil, normalize.DefaultConfig())

	req := validRequest()
	req.Items = []map[string]any{
		{"size": "M", "quantity": "muchas", "price": float64(10)},
	}
	req.DeclaredTotal = 0

	resp, stats, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Greater(t, stats.Total(), 0)
	assert.Equal(t, 1, resp.CoercionFallbacks[string(normalize.FallbackQuantity)])
	// sin título, marca ni sku: tres placeholders contados
	assert.Equal(t, 1, resp.CoercionFallbacks[string(normalize.FallbackTitle)])
}
