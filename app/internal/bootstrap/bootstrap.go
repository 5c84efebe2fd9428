package bootstrap

import (
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/database/redisclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/service/cache"
	compoundcache "github.com/x-xyz/goauction/service/cache/compoundCache"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/goauction/service/cache/provider/redis"
	"github.com/x-xyz/goauction/service/ens"
	"github.com/x-xyz/goauction/service/notifier"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
	auctionRepo "github.com/x-xyz/goauction/stores/auction/repository"
	auctionUsecase "github.com/x-xyz/goauction/stores/auction/usecase"
	custodyRepo "github.com/x-xyz/goauction/stores/custody/repository"
	custodyUsecase "github.com/x-xyz/goauction/stores/custody/usecase"
	ledgerRepo "github.com/x-xyz/goauction/stores/ledger/repository"
	ledgerUsecase "github.com/x-xyz/goauction/stores/ledger/usecase"
)

const localViewTtl = 2 * time.Second

func InitMongo() (*mongoclient.Client, query.Mongo) {
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:            viper.GetString("mongo.uri"),
		AuthDBName:     viper.GetString("mongo.authDBName"),
		DBName:         viper.GetString("mongo.dbName"),
		EnableSSL:      viper.GetBool("mongo.enableSSL"),
		PoolMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	return mongoClient, query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
}

func InitRedis() redis.Service {
	name := viper.GetString("redis_cache.name")
	pool := redisclient.MustConnectRedis(viper.GetString("redis_cache.uri"), viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	return redis.New(name, metrics.New(name), &redis.Pools{
		Src: pool,
	})
}

func InitENS(redisCache redis.Service) ens.ENS {
	rpc := viper.GetString("ens.rpcUrl")
	if rpc == "" {
		log.Log().Warn("ens.rpcUrl not set, names will not be resolved")
		return ens.None{}
	}
	return ens.New(rpc, viper.GetInt("ens.concurrency"), redisCache)
}

func InitNotifier(ensService ens.ENS) auction.Notifier {
	n, err := notifier.New(notifier.Config{
		DiscordBotKey:     viper.GetString("discord.botKey"),
		DiscordChannelId:  viper.GetString("discord.channelId"),
		SiteUrl:           viper.GetString("discord.siteUrl"),
		MinorUnitsPerUnit: viper.GetInt64("ledger.minorUnitsPerUnit"),
	}, ensService)
	if err != nil {
		log.Log().WithField("err", err).Panic("notifier.New failed")
	}
	return n
}

type Stores struct {
	Ledger  ledger.UseCase
	Auction auction.UseCase
}

// InitStores builds the ledger, custody and auction usecases on one mongo deployment
func InitStores(q query.Mongo, redisService redis.Service, n auction.Notifier) *Stores {
	ledgerUC := ledgerUsecase.New(ledgerRepo.NewRepo(q), q)
	custodyUC := custodyUsecase.New(custodyRepo.NewSlotRepo(q), ledgerUC, viper.GetInt64("custody.deposit"))

	viewTtl := viper.GetDuration("auction.viewCacheTtl")
	if viewTtl <= 0 {
		viewTtl = time.Minute
	}
	viewCache := compoundcache.NewCompoundCache([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localViewTtl,
			Pfx:   keys.PfxAuctionView,
			Cache: primitive.NewPrimitive(keys.PfxAuctionView, 32),
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   viewTtl,
			Pfx:   keys.PfxAuctionView,
			Cache: redisCache.NewRedis(redisService),
		}),
	})

	auctionUC := auctionUsecase.New(&auctionUsecase.Cfg{
		Repo:              auctionRepo.NewRepo(q),
		ActivityRepo:      auctionRepo.NewActivityRepo(q),
		Custody:           custodyUC,
		Ledger:            ledgerUC,
		Transactor:        q,
		ViewCache:         viewCache,
		Notifier:          n,
		MinorUnitsPerUnit: viper.GetInt64("ledger.minorUnitsPerUnit"),
	})

	return &Stores{Ledger: ledgerUC, Auction: auctionUC}
}
