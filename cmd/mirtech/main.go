package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	catalogApp "github.com/davicafu/mirtech-api/internal/catalog/application"
	catalogDomain "github.com/davicafu/mirtech-api/internal/catalog/domain"
	catalogHttp "github.com/davicafu/mirtech-api/internal/catalog/infra/inbound/http"
	catalogPostgres "github.com/davicafu/mirtech-api/internal/catalog/infra/outbound/db/postgres"
	catalogSQLite "github.com/davicafu/mirtech-api/internal/catalog/infra/outbound/db/sqlite"
	"github.com/davicafu/mirtech-api/internal/config"
	orderApp "github.com/davicafu/mirtech-api/internal/order/application"
	orderDomain "github.com/davicafu/mirtech-api/internal/order/domain"
	orderHttp "github.com/davicafu/mirtech-api/internal/order/infra/inbound/http"
	orderPostgres "github.com/davicafu/mirtech-api/internal/order/infra/outbound/db/postgres"
	orderSQLite "github.com/davicafu/mirtech-api/internal/order/infra/outbound/db/sqlite"
	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	dbPostgres "github.com/davicafu/mirtech-api/internal/shared/infra/db/postgres"
	dbSQLite "github.com/davicafu/mirtech-api/internal/shared/infra/db/sqlite"
	infraEvents "github.com/davicafu/mirtech-api/internal/shared/infra/events"
	"github.com/davicafu/mirtech-api/internal/shared/infra/inbound/http/middleware"
	sharedBus "github.com/davicafu/mirtech-api/internal/shared/infra/platform/bus"
	platformCache "github.com/davicafu/mirtech-api/internal/shared/infra/platform/cache"
	infraRelayer "github.com/davicafu/mirtech-api/internal/shared/infra/relayer"
	userApp "github.com/davicafu/mirtech-api/internal/user/application"
	userDomain "github.com/davicafu/mirtech-api/internal/user/domain"
	userHttp "github.com/davicafu/mirtech-api/internal/user/infra/inbound/http"
	userPostgres "github.com/davicafu/mirtech-api/internal/user/infra/outbound/db/postgres"
	userSQLite "github.com/davicafu/mirtech-api/internal/user/infra/outbound/db/sqlite"
	"github.com/davicafu/mirtech-api/pkg/logger"

	// _ "github.com/mattn/go-sqlite3" // requires gcc
	_ "modernc.org/sqlite"
)

// ---------------- Main ----------------
func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync() // flush buffers al salir

	ctx := context.Background()
	cfg := config.LoadConfig()

	// ---------------- DB ----------------
	var productRepo catalogDomain.ProductRepository
	var userRepo userDomain.UserRepository
	var orderRepo orderDomain.OrderRepository
	var outboxRepo sharedDomain.OutboxRepository

	if cfg.PostgresURL != "" {
		db, err := sql.Open("pgx", cfg.PostgresURL)
		if err != nil {
			log.Fatal("failed to open PostgreSQL", zap.Error(err))
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("failed to ping PostgreSQL", zap.Error(err))
		}
		if err := dbPostgres.InitSchema(db); err != nil {
			log.Fatal("failed to initialize PostgreSQL schema", zap.Error(err))
		}

		productRepo = catalogPostgres.NewProductRepoPostgres(db)
		userRepo = userPostgres.NewUserRepoPostgres(db)
		orderRepo = orderPostgres.NewOrderRepoPostgres(db)
		outboxRepo = dbPostgres.NewOutboxRepoPostgres(db)
		log.Info("✅ PostgreSQL conectado")
	} else {
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			log.Fatal("failed to open SQLite", zap.Error(err))
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("failed to ping SQLite", zap.Error(err))
		}
		if err := dbSQLite.InitSchema(db); err != nil {
			log.Fatal("failed to initialize SQLite schema", zap.Error(err))
		}

		productRepo = catalogSQLite.NewProductRepoSQLite(db)
		userRepo = userSQLite.NewUserRepoSQLite(db)
		orderRepo = orderSQLite.NewOrderRepoSQLite(db)
		outboxRepo = dbSQLite.NewOutboxRepoSQLite(db)
		log.Info("✅ SQLite conectado", zap.String("path", cfg.SQLitePath))
	}

	// ---------------- Cache ----------------
	var cacheInstance platformCache.Cache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("⚠️ Redis no disponible, cache en memoria", zap.Error(err))
		ttl := time.Duration(cfg.CacheTTLSecs) * time.Second
		cacheInstance = platformCache.NewInMemoryCache(ttl, 3*ttl)
	} else {
		cacheInstance = platformCache.NewRedisCache(rdb)
		log.Info("✅ Redis conectado, cache habilitado")
	}

	// --------------- Servicios --------------
	productService := catalogApp.NewProductService(productRepo, cacheInstance, cfg.CacheTTLSecs, log)
	userService := userApp.NewUserService(userRepo, cacheInstance, cfg.CacheTTLSecs, log)
	orderService := orderApp.NewOrderService(orderRepo, cacheInstance, cfg.CacheTTLSecs, log)

	// ---------------- Events ---------------
	var publisher sharedBus.EventBus
	if cfg.UseKafka {
		log.Info("🚀 Usando Kafka como bus de eventos")
		writer := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		defer writer.Close()
		publisher = infraEvents.NewKafkaPublisher(writer, log)
	} else {
		log.Info("⚡️ Usando bus de eventos en memoria")
		publisher = infraEvents.NewInMemoryEventBus(cfg.KafkaTopic)
	}

	// ------------ Outbox Worker ------------
	outboxWorker := infraRelayer.NewOutboxWorker(outboxRepo, publisher, cfg.OutboxPeriod, cfg.OutboxLimit, log)
	outboxWorker.Start(ctx)

	// ---------------- HTTP ----------------
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api := router.Group("/api/v1")
	catalogHttp.RegisterProductRoutes(api, catalogHttp.NewProductHandler(productService))
	userHttp.RegisterUserRoutes(api, userHttp.NewUserHandler(userService))
	orderHttp.RegisterOrderRoutes(api, orderHttp.NewOrderHandler(orderService))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
