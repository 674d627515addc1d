package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"os"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// 金額はセント単位に丸める。
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CheckoutUsecase は会計セッションを進める。
// 同時に開けるカートは1つだけで、セッション中の在庫は予約しない。
// 在庫が減るのは確定（Finalize）の瞬間だけ。
type CheckoutUsecase struct {
	mu              sync.Mutex
	memberRepo      repo.MemberRepository
	productRepo     repo.ProductRepository
	reorderRepo     repo.ReorderRepository
	transactionRepo repo.TransactionRepository
	idGen           IDGenerator
	clock           Clock

	// 進行中のカート。nil ならセッション無し。
	cart *model.Cart
}

// DI
func NewCheckoutUsecase(
	memberRepo repo.MemberRepository,
	productRepo repo.ProductRepository,
	reorderRepo repo.ReorderRepository,
	transactionRepo repo.TransactionRepository,
	idGen IDGenerator,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		memberRepo:      memberRepo,
		productRepo:     productRepo,
		reorderRepo:     reorderRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		clock:           clock,
	}
}

type AddItemInput struct {
	ProductID int
	Quantity  int
}

type CartLineResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CartResponse struct {
	MemberID      int                `json:"member_id"`
	Items         []CartLineResponse `json:"items"`
	TotalProducts int                `json:"total_products"`
	Total         float64            `json:"total"`
}

// FinalizeOutput の Remainder は正なら不足額、0以下なら釣り銭
// （絶対値が釣り銭額）。不足時は Committed=false でカートは
// そのまま残り、累計金額で再度 Finalize できる。
type FinalizeOutput struct {
	Remainder   float64            `json:"remainder"`
	Committed   bool               `json:"committed"`
	Transaction *model.Transaction `json:"transaction,omitempty"`
}

// Begin は会員の会計セッションを開く。会員が見つからなければ
// セッション状態は変わらない。開きっぱなしの未確定カートが
// あれば黙って破棄する（端末は1台の前提）。
func (u *CheckoutUsecase) Begin(ctx context.Context, memberID int) (CartResponse, error) {
	if memberID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid member id")
	}
	_, err := u.memberRepo.FindByID(ctx, memberID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "member not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "registry error")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cart != nil {
		logger.Warn().
			Int("member_id", u.cart.MemberID).
			Int("items", len(u.cart.Items)).
			Msg("discarding uncommitted cart")
	}
	u.cart = model.NewCart(memberID)
	return buildCartResponse(u.cart), nil
}

// AddItem はカートに商品を積む。在庫は減らさず、確認だけ行う。
// 発注トリガは「売れたと仮定した残り在庫が最低在庫数以上」の
// 時点で先回りして引かれる。これはセッションが破棄されても
// 取り消されない（元仕様の挙動をそのまま残している）。
func (u *CheckoutUsecase) AddItem(ctx context.Context, in AddItemInput) (CartResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cart == nil {
		return CartResponse{}, NewHTTPError(http.StatusConflict, "no active checkout session")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	if in.Quantity <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if p.Stock < in.Quantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "insufficient stock")
	}

	// 先回り発注。後続の明細マージ検証で失敗しても発注は残る。
	if p.Stock-in.Quantity >= p.RestockAmount {
		if err := u.reorderRepo.Add(ctx, p.ID); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "reorder error")
		}
		logger.Info().Int("product_id", p.ID).Msg("product queued for reorder")
	}

	if line := u.cart.Find(p.ID); line != nil {
		// 同一商品は数量加算。合算後の数量も未予約の在庫数に
		// 対して検証し直す。
		if line.Quantity+in.Quantity > p.Stock {
			return CartResponse{}, NewHTTPError(http.StatusBadRequest, "insufficient stock")
		}
		line.SetQuantity(p, line.Quantity+in.Quantity)
	} else {
		u.cart.Add(model.NewLineItem(p, in.Quantity))
	}
	return buildCartResponse(u.cart), nil
}

// Cart は進行中のカートを返す。
func (u *CheckoutUsecase) Cart(ctx context.Context) (CartResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cart == nil {
		return CartResponse{}, NewHTTPError(http.StatusConflict, "no active checkout session")
	}
	return buildCartResponse(u.cart), nil
}

// Finalize は支払いを検証して取引を確定する。不足なら何も
// 変えずに不足額を返す。足りていれば全明細の在庫をまとめて
// 減らし（全部成功か全部不成立か）、在庫が最低在庫数以下に
// 落ちた商品を発注キューへ入れ、取引をログに追記する。
func (u *CheckoutUsecase) Finalize(ctx context.Context, tendered float64) (FinalizeOutput, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cart == nil {
		return FinalizeOutput{}, NewHTTPError(http.StatusConflict, "no active checkout session")
	}

	total := roundCents(u.cart.Total())
	if tendered < total {
		return FinalizeOutput{Remainder: roundCents(total - tendered), Committed: false}, nil
	}

	// 減算は全明細を検証してから適用する。途中で止まった
	// 半端な状態を作らない。
	updated := make([]model.Product, 0, len(u.cart.Items))
	for _, l := range u.cart.Items {
		p, err := u.productRepo.FindByID(ctx, l.Product.ID)
		if err != nil {
			return FinalizeOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
		}
		if p.Stock < l.Quantity {
			return FinalizeOutput{}, NewHTTPError(http.StatusConflict, "stock changed during checkout")
		}
		p.Stock -= l.Quantity
		updated = append(updated, p)
	}
	for _, p := range updated {
		if err := u.productRepo.Update(ctx, p); err != nil {
			return FinalizeOutput{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
		}
		if p.Stock <= p.RestockAmount {
			if err := u.reorderRepo.Add(ctx, p.ID); err != nil {
				return FinalizeOutput{}, NewHTTPError(http.StatusInternalServerError, "reorder error")
			}
			logger.Info().Int("product_id", p.ID).Int("stock", p.Stock).Msg("product queued for reorder")
		}
	}

	items := make([]model.LineItem, len(u.cart.Items))
	copy(items, u.cart.Items)
	t := model.Transaction{
		ID:            u.idGen.NewID(),
		MemberID:      u.cart.MemberID,
		Items:         items,
		TotalProducts: u.cart.TotalProducts,
		Total:         total,
		DateOfSale:    u.clock.Now(),
	}
	if err := u.transactionRepo.Append(ctx, t); err != nil {
		return FinalizeOutput{}, NewHTTPError(http.StatusInternalServerError, "transaction log error")
	}

	u.cart = nil
	return FinalizeOutput{
		Remainder:   roundCents(total - tendered),
		Committed:   true,
		Transaction: &t,
	}, nil
}

func buildCartResponse(c *model.Cart) CartResponse {
	items := make([]CartLineResponse, 0, len(c.Items))
	for _, l := range c.Items {
		items = append(items, CartLineResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}
	return CartResponse{
		MemberID:      c.MemberID,
		Items:         items,
		TotalProducts: c.TotalProducts,
		Total:         roundCents(c.Total()),
	}
}
