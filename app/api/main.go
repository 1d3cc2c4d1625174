package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/database/redisclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	bValidator "github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/chain"
	"github.com/x-xyz/goauction/service/ledger"
	"github.com/x-xyz/goauction/service/pricefeed"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
	auction_delivery "github.com/x-xyz/goauction/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/goauction/stores/auction/repository"
	auction_usecase "github.com/x-xyz/goauction/stores/auction/usecase"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
	oracle_usecase "github.com/x-xyz/goauction/stores/oracle/usecase"
	paytoken_repository "github.com/x-xyz/goauction/stores/paytoken/repository"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
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
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	context.Info("init chain service")
	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))
	rpcs := map[int32]string{
		int32(chainId): viper.GetString("chain.rpcUrl"),
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	feedSource := pricefeed.New(chainService, redisCache)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	snapshotRepo := auction_repository.NewSnapshotRepo(q)
	bidRecordRepo := auction_repository.NewBidRecordRepo(q)
	emitter := auction_repository.NewRedisEmitter(redisCache)

	hc := hc_usecase.New(hcRepo)
	oracle := oracle_usecase.New(&oracle_usecase.OracleUseCaseCfg{
		ChainId:    chainId,
		NativeFeed: domain.Address(viper.GetString("oracle.nativeFeed")).ToLower(),
		Paytoken:   paytokenRepo,
		Feed:       feedSource,
	})

	// custody collaborators run on the in-memory ledger, chain-backed
	// custody plugs in here without touching the registry
	custody := ledger.New()

	registry := auction_usecase.NewRegistry(&auction_usecase.RegistryCfg{
		ChainId:      chainId,
		FeeRecipient: domain.Address(viper.GetString("auction.feeRecipient")).ToLower(),
		Nft:          custody,
		Fund:         custody,
		Oracle:       oracle,
		Paytoken:     paytokenRepo,
		Snapshots:    snapshotRepo,
		BidRecords:   bidRecordRepo,
		Emitter:      emitter,
	})

	hc_delivery.New(e, hc)
	auction_delivery.New(e, registry, snapshotRepo, bidRecordRepo)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
