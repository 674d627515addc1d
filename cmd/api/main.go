package main

import (
	"time"

	"app/internal/config"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//Repository（インメモリ実装）生成
	memberRepo := infraRepo.NewMemberMemoryRepository()
	productRepo := infraRepo.NewProductMemoryRepository()
	reorderRepo := infraRepo.NewReorderMemoryRepository()
	transactionRepo := infraRepo.NewTransactionMemoryRepository()

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	memberUC := usecase.NewMemberUsecase(memberRepo, clock)
	productUC := usecase.NewProductUsecase(productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(memberRepo, productRepo, reorderRepo, transactionRepo, idGen, clock)
	shipmentUC := usecase.NewShipmentUsecase(productRepo, reorderRepo)
	transactionUC := usecase.NewTransactionUsecase(transactionRepo)
	storeUC := usecase.NewStoreUsecase(memberRepo, productRepo, reorderRepo, transactionRepo, idGen, clock, cfg.DataDir)

	//Handler生成
	hs := server.Handlers{
		Member:      handler.NewMemberHandler(memberUC),
		Product:     handler.NewProductHandler(productUC),
		Checkout:    handler.NewCheckoutHandler(checkoutUC),
		Shipment:    handler.NewShipmentHandler(shipmentUC),
		Transaction: handler.NewTransactionHandler(transactionUC),
		Store:       handler.NewStoreHandler(storeUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, hs); err != nil {
		panic(err)
	}
}
