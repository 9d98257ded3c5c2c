package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/niksmo/shopfront/config"
	"github.com/niksmo/shopfront/internal/adapter/httphandler"
	"github.com/niksmo/shopfront/internal/adapter/kafka"
	"github.com/niksmo/shopfront/internal/adapter/mailer"
	"github.com/niksmo/shopfront/internal/adapter/storage"
	"github.com/niksmo/shopfront/internal/core/service"
	"github.com/niksmo/shopfront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type storages struct {
	sqldb    storage.SQLDB
	products storage.ProductsRepository
	orders   storage.OrdersRepository
}

type streaming struct {
	orderSerde schema.Serde
	producer   kafka.OrdersProducer
	statsProc  *kafka.RegionStatsProcessor
	statsView  *kafka.RegionStatsView
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	storages   storages
	streaming  streaming
	service    *service.Service
	httpServer httphandler.HTTPServer
	wg         sync.WaitGroup
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorages()
	app.initStreaming()
	app.initCoreService()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorages() {
	const op = "App.initStorages"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.storages.sqldb = sqldb
	app.storages.products = storage.NewProductsRepository(sqldb)
	app.storages.orders = storage.NewOrdersRepository(sqldb)
}

func (app *App) initStreaming() {
	const op = "App.initStreaming"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	ordersTopic := app.cfg.Broker.Topics.Orders
	statsTable := app.cfg.Broker.Topics.RegionStatsTable

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	orderSerde, err := schema.NewSerdeOrderV1(
		ctx,
		schema.SubjectOpt(ordersTopic+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, ordersTopic),
		kafka.ProducerEncoderOpt(orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	statsProc, err := kafka.NewRegionStatsProc(
		seedBrokers, ordersTopic, statsTable, orderSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	statsView, err := kafka.NewRegionStatsView(seedBrokers, statsTable)
	if err != nil {
		app.fallDown(op, err)
	}

	app.streaming.orderSerde = orderSerde
	app.streaming.producer = producer
	app.streaming.statsProc = statsProc
	app.streaming.statsView = statsView
}

func (app *App) initCoreService() {
	notifier := mailer.New(mailer.Config{
		Endpoint:   app.cfg.Mailer.Endpoint,
		ServiceID:  app.cfg.Mailer.ServiceID,
		TemplateID: app.cfg.Mailer.TemplateID,
		UserID:     app.cfg.Mailer.UserID,
	})

	app.service = service.New(
		app.storages.products,
		app.storages.orders,
		app.streaming.producer,
		notifier,
	)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCheckout(mux, app.service)
	httphandler.RegisterAdmin(
		mux,
		httphandler.NewTokenGate(app.cfg.AdminToken),
		app.storages.products,
		app.storages.orders,
		app.streaming.statsView,
	)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.wg.Add(1)
	go app.streaming.statsProc.Run(app.ctx, stopFn, &app.wg)
	go app.streaming.statsView.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.streaming.statsProc.Close()
	app.wg.Wait()
	app.streaming.producer.Close()
	app.storages.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
