package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 発注と入荷処理の業務ロジック。
type ShipmentUsecase struct {
	productRepo repo.ProductRepository
	reorderRepo repo.ReorderRepository
}

// DI
func NewShipmentUsecase(productRepo repo.ProductRepository, reorderRepo repo.ReorderRepository) *ShipmentUsecase {
	return &ShipmentUsecase{productRepo: productRepo, reorderRepo: reorderRepo}
}

type OutstandingOrderResponse struct {
	ProductID       int    `json:"product_id"`
	Name            string `json:"name"`
	Stock           int    `json:"stock"`
	RestockAmount   int    `json:"restock_amount"`
	QuantityOnOrder int    `json:"quantity_on_order"`
}

type ProcessShipmentOutput struct {
	Product          model.Product `json:"product"`
	QuantityReceived int           `json:"quantity_received"`
}

// ListOutstanding は発注中の商品を追加順に返す。
// 発注数量はその時点の最低在庫数から導出する。
func (u *ShipmentUsecase) ListOutstanding(ctx context.Context) ([]OutstandingOrderResponse, error) {
	ids, err := u.reorderRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "reorder error")
	}

	out := make([]OutstandingOrderResponse, 0, len(ids))
	for _, id := range ids {
		p, err := u.productRepo.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "catalog error")
		}
		out = append(out, OutstandingOrderResponse{
			ProductID:       p.ID,
			Name:            p.Name,
			Stock:           p.Stock,
			RestockAmount:   p.RestockAmount,
			QuantityOnOrder: p.ReorderQuantity(),
		})
	}
	return out, nil
}

// Order は商品を手動で発注キューへ入れる。発注済みなら何も
// 起きず成功する。
func (u *ShipmentUsecase) Order(ctx context.Context, productID int) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	_, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	if err := u.reorderRepo.Add(ctx, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "reorder error")
	}
	return nil
}

// Process は入荷を処理する。発注中でなければ在庫は変えない。
// 入荷数は常に最低在庫数の2倍で、処理後はキューから消える。
func (u *ShipmentUsecase) Process(ctx context.Context, productID int) (ProcessShipmentOutput, error) {
	if productID <= 0 {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	onOrder, err := u.reorderRepo.Contains(ctx, productID)
	if err != nil {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusInternalServerError, "reorder error")
	}
	if !onOrder {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusNotFound, "product not on order")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	received := p.ReorderQuantity()
	p.Stock += received
	if err := u.productRepo.Update(ctx, p); err != nil {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	if err := u.reorderRepo.Remove(ctx, productID); err != nil {
		return ProcessShipmentOutput{}, NewHTTPError(http.StatusInternalServerError, "reorder error")
	}

	logger.Info().Int("product_id", p.ID).Int("received", received).Msg("shipment processed")
	return ProcessShipmentOutput{Product: p, QuantityReceived: received}, nil
}
