package main

import (
	"context"
	"time"

	"garageonline/internal/config"
	"garageonline/internal/handler"
	"garageonline/internal/infra/pdf"
	infraRepo "garageonline/internal/infra/repository"
	"garageonline/internal/infra/source"
	"garageonline/internal/server"
	"garageonline/internal/usecase"
	"garageonline/internal/validator"

	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// カタログは起動時に一度だけ取得する。
	// 失敗してもプロセスは落とさず、空のカタログで起動する。
	timeout := time.Duration(cfg.CatalogTimeoutSeconds) * time.Second
	src := source.NewHTTPCatalogSource(cfg.CatalogURL, timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	vehicles, fetchErr := src.Fetch(ctx)
	cancel()

	//Repository（メモリ実装）生成
	catalogRepo := infraRepo.NewCatalogMemoryRepository(vehicles)
	cartRepo := infraRepo.NewCartMemoryRepository()

	//usecaseに渡す部品
	clock := &realClock{}
	checkoutV := validator.NewCheckoutValidator()
	renderer := pdf.NewInvoicePDFRenderer()

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	cartUC := usecase.NewCartUsecase(catalogRepo, cartRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, checkoutV, renderer, clock)

	//Handler生成
	catalogH := handler.NewCatalogHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)

	//Server起動
	e := server.New(catalogH, cartH, checkoutH)

	if fetchErr != nil {
		e.Logger.Errorf("catalog fetch failed, starting with empty catalog: %v", fetchErr)
	} else {
		e.Logger.Infof("catalog loaded: %d vehicles", len(vehicles))
	}

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
