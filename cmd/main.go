package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/ecomlab/storefront-admin/docs"
	"github.com/ecomlab/storefront-admin/internal/app"
	"github.com/ecomlab/storefront-admin/internal/config"
	"github.com/ecomlab/storefront-admin/internal/events"
	"github.com/ecomlab/storefront-admin/internal/handler"
	"github.com/ecomlab/storefront-admin/internal/postgres"
	"github.com/ecomlab/storefront-admin/internal/repo"
	"github.com/ecomlab/storefront-admin/internal/service"
	"github.com/ecomlab/storefront-admin/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront Admin API
// @version         1.0
// @description     REST API over the storefront users, orders and products
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to init db schema", postgres.InitSchema(db))

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	var publisher service.EventPublisher = events.NoopPublisher{}
	var kafkaPublisher *events.KafkaPublisher
	if len(conf.Kafka.Brokers) > 0 {
		kafkaPublisher = events.NewKafkaPublisher(logger, conf.Kafka)
		publisher = kafkaPublisher
		logger.Info("kafka publisher enabled", slog.Any("brokers", conf.Kafka.Brokers))
	}

	orderService := service.NewOrderService(logger, txManager, storeRepo, publisher)
	userService := service.NewUserService(logger, storeRepo)
	productService := service.NewProductService(logger, storeRepo)

	handler.RegisterMetrics()

	dev := conf.IsDevelopment()
	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService, dev),
		handler.NewUserHandler(logger, userService, dev),
		handler.NewProductHandler(logger, productService, dev),
	)
	if kafkaPublisher != nil {
		application.AddClosers(kafkaPublisher)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application.Start()
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
