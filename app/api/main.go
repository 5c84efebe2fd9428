package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/app/internal/bootstrap"
	"github.com/x-xyz/goauction/base/config"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	bValidator "github.com/x-xyz/goauction/base/validator"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/goauction/service/cache/provider/redis"
	auction_delivery "github.com/x-xyz/goauction/stores/auction/delivery/http"
	auth_delivery "github.com/x-xyz/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
	auth_repository "github.com/x-xyz/goauction/stores/auth/repository"
	auth_usecase "github.com/x-xyz/goauction/stores/auth/usecase"
	ens_delivery "github.com/x-xyz/goauction/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
	ledger_delivery "github.com/x-xyz/goauction/stores/ledger/delivery/http"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/goauction/app/api/docs"
)

func init() {
	if err := config.Load("api", os.Args[1:]); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Dutch Auction API
//	@version		1.0
//	@description	Single-asset dutch auctions with custody and settlement.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth_sign and apply with 'bearer {token}'
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient, q := bootstrap.InitMongo()

	// init Redis service
	context.Info("init redis cache")
	redisService := bootstrap.InitRedis()
	httpCache := mmiddleware.NewHttpCache(primitive.NewPrimitive("httpCache", 64), redisCache.NewRedis(redisService))

	ensService := bootstrap.InitENS(redisService)
	stores := bootstrap.InitStores(q, redisService, bootstrap.InitNotifier(ensService))

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), auth_repository.NewNonceRepo(q))
	authMiddleware := auth_middleware.New(auth, viper.GetStringSlice("admin.addresses"))

	hc := hc_usecase.New(hc_repo.New(mongoClient, redisService))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	auction_delivery.New(e, stores.Auction, authMiddleware, httpCache, viper.GetInt("auction.pageSize"))
	ledger_delivery.New(e, stores.Ledger, authMiddleware)
	ens_delivery.New(e, ensService, httpCache)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	c, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(c); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	if err := mongoClient.Disconnect(c); err != nil {
		log.Log().WithField("err", err).Error("mongo disconnect failed")
	}
}
