package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newShipmentFixture(t *testing.T, products ...model.Product) (*usecase.ShipmentUsecase, *infraRepo.ProductMemoryRepository, *infraRepo.ReorderMemoryRepository) {
	t.Helper()
	ctx := context.Background()

	productRepo := infraRepo.NewProductMemoryRepository()
	reorderRepo := infraRepo.NewReorderMemoryRepository()
	for _, p := range products {
		assert.NoError(t, productRepo.Create(ctx, p))
	}
	return usecase.NewShipmentUsecase(productRepo, reorderRepo), productRepo, reorderRepo
}

func TestShipmentUsecase_Process_NotOnOrder(t *testing.T) {
	uc, _, _ := newShipmentFixture(t, model.Product{ID: 1, Name: "Milk", Price: 2.50, Stock: 2, RestockAmount: 5})

	_, err := uc.Process(context.Background(), 1)
	assertErrContains(t, err, "product not on order")
}

// 入荷数は常に最低在庫数の2倍。処理後はキューから消える。
func TestShipmentUsecase_Process_AddsDerivedQuantity(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, reorderRepo := newShipmentFixture(t, model.Product{ID: 1, Name: "Milk", Price: 2.50, Stock: 2, RestockAmount: 5})

	assert.NoError(t, uc.Order(ctx, 1))

	out, err := uc.Process(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, out.QuantityReceived)
	assert.Equal(t, 12, out.Product.Stock)

	p, err := productRepo.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 12, p.Stock)

	queued, err := reorderRepo.Contains(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, queued)

	// 二度目はもう発注中ではない
	_, err = uc.Process(ctx, 1)
	assertErrContains(t, err, "product not on order")
}

func TestShipmentUsecase_Order_UnknownProduct(t *testing.T) {
	uc, _, _ := newShipmentFixture(t)

	err := uc.Order(context.Background(), 42)
	assertErrContains(t, err, "product not found")
}

// 発注済みの再発注は黙って成功し、キューは重複しない
func TestShipmentUsecase_Order_Idempotent(t *testing.T) {
	ctx := context.Background()
	uc, _, reorderRepo := newShipmentFixture(t, model.Product{ID: 1, Name: "Milk", Price: 2.50, Stock: 2, RestockAmount: 5})

	assert.NoError(t, uc.Order(ctx, 1))
	assert.NoError(t, uc.Order(ctx, 1))

	ids, err := reorderRepo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestShipmentUsecase_ListOutstanding(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newShipmentFixture(t,
		model.Product{ID: 1, Name: "Milk", Price: 2.50, Stock: 2, RestockAmount: 5},
		model.Product{ID: 2, Name: "Bread", Price: 3.00, Stock: 1, RestockAmount: 4},
	)

	assert.NoError(t, uc.Order(ctx, 2))
	assert.NoError(t, uc.Order(ctx, 1))

	out, err := uc.ListOutstanding(ctx)
	assert.NoError(t, err)
	if assert.Len(t, out, 2) {
		// 追加順
		assert.Equal(t, 2, out[0].ProductID)
		assert.Equal(t, 8, out[0].QuantityOnOrder)
		assert.Equal(t, 1, out[1].ProductID)
		assert.Equal(t, 10, out[1].QuantityOnOrder)
	}
}
