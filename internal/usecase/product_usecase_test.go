package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByName(ctx context.Context, name string) (model.Product, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Reset(ctx context.Context) error {
	panic("not used in ProductUsecase tests")
}

// =====================
// Add
// =====================

func TestProductUsecase_Add_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	want := model.Product{ID: 7, Name: "Coffee", Price: 9.99, Stock: 30, RestockAmount: 10}
	pRepo.On("Create", mock.Anything, want).Return(nil)

	got, err := uc.Add(context.Background(), usecase.AddProductInput{
		ID: 7, Name: "Coffee", Price: 9.99, Stock: 30, RestockAmount: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_Add_DuplicateID(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicateID)

	uc := usecase.NewProductUsecase(pRepo)

	_, err := uc.Add(context.Background(), usecase.AddProductInput{
		ID: 7, Name: "Coffee", Price: 9.99, Stock: 30, RestockAmount: 10,
	})
	assertErrContains(t, err, "duplicate product id")
}

func TestProductUsecase_Add_InvalidInput(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock))
	ctx := context.Background()

	_, err := uc.Add(ctx, usecase.AddProductInput{ID: 0, Name: "Coffee", Price: 1})
	assertErrContains(t, err, "invalid product id")

	_, err = uc.Add(ctx, usecase.AddProductInput{ID: 7, Name: "Coffee", Price: -1})
	assertErrContains(t, err, "invalid price")

	_, err = uc.Add(ctx, usecase.AddProductInput{ID: 7, Name: "Coffee", Price: 1, Stock: -1})
	assertErrContains(t, err, "invalid stock")

	_, err = uc.Add(ctx, usecase.AddProductInput{ID: 7, Name: "Cof|fee", Price: 1})
	assertErrContains(t, err, "invalid character in name")
}

// =====================
// Get / UpdatePrice
// =====================

func TestProductUsecase_GetByID_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, 999).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewProductUsecase(pRepo)

	_, err := uc.GetByID(context.Background(), 999)
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_UpdatePrice_Success(t *testing.T) {
	existing := model.Product{ID: 7, Name: "Coffee", Price: 9.99, Stock: 30, RestockAmount: 10}
	updated := existing
	updated.Price = 8.49

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, 7).Return(existing, nil)
	pRepo.On("Update", mock.Anything, updated).Return(nil)

	uc := usecase.NewProductUsecase(pRepo)

	got, err := uc.UpdatePrice(context.Background(), 7, 8.49)
	assert.NoError(t, err)
	assert.Equal(t, 8.49, got.Price)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_UpdatePrice_Negative(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock))

	_, err := uc.UpdatePrice(context.Background(), 7, -0.01)
	assertErrContains(t, err, "invalid price")
}
