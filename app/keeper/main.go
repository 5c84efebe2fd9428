package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/app/internal/bootstrap"
	"github.com/x-xyz/goauction/base/config"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/keeper"
	"github.com/x-xyz/goauction/base/log"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
)

func init() {
	if err := config.Load("keeper", os.Args[1:]); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()

	ctx.Info("init mongo")
	mongoClient, q := bootstrap.InitMongo()

	ctx.Info("init redis cache")
	redisService := bootstrap.InitRedis()

	n := bootstrap.InitNotifier(bootstrap.InitENS(redisService))
	stores := bootstrap.InitStores(q, redisService, n)

	startEchoServer(hc_usecase.New(hc_repo.New(mongoClient, redisService)))

	k := keeper.New(&keeper.Cfg{
		Auction:     stores.Auction,
		Redis:       redisService,
		Notifier:    n,
		Interval:    viper.GetDuration("keeper.interval"),
		PageSize:    viper.GetInt("auction.pageSize"),
		Concurrency: viper.GetInt("keeper.concurrency"),
	})

	ctx.Info("starting keeper")
	k.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	ctx.WithField("signal", sig).Info("received signal")
	cancel()
	k.Wait()
	ctx.Info("keeper stopped")
}

// startEchoServer serves the health check of the keeper pod
func startEchoServer(hc hcdomain.HealthCheckUsecase) {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	hc_delivery.New(e, hc)

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.WithField("err", err).Error("shutting down the server")
		}
	}()
}
