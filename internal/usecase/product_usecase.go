package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 商品カタログの業務ロジック。
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type AddProductInput struct {
	ID            int
	Name          string
	Price         float64
	Stock         int
	RestockAmount int
}

// Add はカタログに商品を登録する。IDが重複していれば409。
func (u *ProductUsecase) Add(ctx context.Context, in AddProductInput) (model.Product, error) {
	if err := validateFreeText("name", in.Name); err != nil {
		return model.Product{}, err
	}
	if in.ID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid stock")
	}
	if in.RestockAmount < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid restock amount")
	}

	p := model.Product{
		ID:            in.ID,
		Name:          strings.TrimSpace(in.Name),
		Price:         in.Price,
		Stock:         in.Stock,
		RestockAmount: in.RestockAmount,
	}
	err := u.productRepo.Create(ctx, p)
	if errors.Is(err, repo.ErrDuplicateID) {
		return model.Product{}, NewHTTPError(http.StatusConflict, "duplicate product id")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return products, nil
}

func (u *ProductUsecase) GetByID(ctx context.Context, productID int) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}

// 商品名での取得（大文字小文字を区別しない）。
func (u *ProductUsecase) GetByName(ctx context.Context, name string) (model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	p, err := u.productRepo.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}

// UpdatePrice は売価を変更する。確定済み取引の合計はスナップ
// ショットなので影響を受けない。
func (u *ProductUsecase) UpdatePrice(ctx context.Context, productID int, newPrice float64) (model.Product, error) {
	if newPrice < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return model.Product{}, err
	}

	p.Price = newPrice
	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}
