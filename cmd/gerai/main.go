package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/geraietalase/gerai-pos/internal/catalog"
	"github.com/geraietalase/gerai-pos/internal/customers"
	"github.com/geraietalase/gerai-pos/internal/messaging"
	"github.com/geraietalase/gerai-pos/internal/reports"
	"github.com/geraietalase/gerai-pos/internal/sales"
	"github.com/geraietalase/gerai-pos/internal/settings"
	"github.com/geraietalase/gerai-pos/internal/store"
	"github.com/geraietalase/gerai-pos/internal/store/file"
	"github.com/geraietalase/gerai-pos/internal/store/postgres"
	"github.com/geraietalase/gerai-pos/internal/telemetry"
)

const serviceVersion = "0.1.0"

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, "gerai-pos", serviceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider("gerai-pos", serviceVersion)
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	if err := runtime.Start(); err != nil {
		logger.Error("failed to start runtime instrumentation", "error", err)
		os.Exit(1)
	}

	st, closeStore, err := openStore(ctx, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var producer *messaging.Producer
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		producer = messaging.NewProducer(strings.Split(kafkaBrokers, ","), "sale.created")
		defer func() { _ = producer.Close() }()
	}

	// One lock serializes every read-modify-write cycle across all
	// collections.
	var mu sync.Mutex

	salesHandler, err := sales.NewHandler(sales.NewService(st, &mu), producer, logger)
	if err != nil {
		logger.Error("failed to create sales handler", "error", err)
		os.Exit(1)
	}
	catalogHandler := catalog.NewHandler(catalog.NewService(st, &mu), logger)
	customersHandler := customers.NewHandler(customers.NewService(st, &mu), logger)
	reportsHandler := reports.NewHandler(st, &mu, logger)
	settingsHandler := settings.NewHandler(st, logger)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)

	mux.HandleFunc("GET /sales", telemetry.WithHTTPRoute(salesHandler.HandleList))
	mux.HandleFunc("POST /sales/checkout", telemetry.WithHTTPRoute(salesHandler.HandleCheckout))
	mux.HandleFunc("POST /sales/{id}/toggle-status", telemetry.WithHTTPRoute(salesHandler.HandleToggleStatus))
	mux.HandleFunc("PATCH /sales/{id}", telemetry.WithHTTPRoute(salesHandler.HandleEdit))
	mux.HandleFunc("DELETE /sales/{id}", telemetry.WithHTTPRoute(salesHandler.HandleDelete))

	mux.HandleFunc("GET /products", telemetry.WithHTTPRoute(catalogHandler.HandleList))
	mux.HandleFunc("POST /products", telemetry.WithHTTPRoute(catalogHandler.HandleCreate))
	mux.HandleFunc("PUT /products/{id}", telemetry.WithHTTPRoute(catalogHandler.HandleUpdate))
	mux.HandleFunc("DELETE /products/{id}", telemetry.WithHTTPRoute(catalogHandler.HandleDelete))

	mux.HandleFunc("GET /customers", telemetry.WithHTTPRoute(customersHandler.HandleList))
	mux.HandleFunc("POST /customers", telemetry.WithHTTPRoute(customersHandler.HandleCreate))
	mux.HandleFunc("PUT /customers/{id}", telemetry.WithHTTPRoute(customersHandler.HandleUpdate))
	mux.HandleFunc("DELETE /customers/{id}", telemetry.WithHTTPRoute(customersHandler.HandleDelete))
	mux.HandleFunc("GET /customers/{id}/sales", telemetry.WithHTTPRoute(customersHandler.HandleSalesHistory))

	mux.HandleFunc("GET /dashboard/stats", telemetry.WithHTTPRoute(reportsHandler.HandleDashboardStats))
	mux.HandleFunc("GET /reports/revenue", telemetry.WithHTTPRoute(reportsHandler.HandleRevenueByDate))
	mux.HandleFunc("GET /reports/top-inventory", telemetry.WithHTTPRoute(reportsHandler.HandleTopInventory))
	mux.HandleFunc("GET /reports/totals", telemetry.WithHTTPRoute(reportsHandler.HandleTotals))

	mux.HandleFunc("GET /settings/theme", telemetry.WithHTTPRoute(settingsHandler.HandleGetTheme))
	mux.HandleFunc("PUT /settings/theme", telemetry.WithHTTPRoute(settingsHandler.HandlePutTheme))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr: ":" + port,
		Handler: otelhttp.NewHandler(mux, "gerai-pos",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if r.Pattern != "" {
					return r.Pattern
				}
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting gerai-pos", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

// openStore picks PostgreSQL when DATABASE_URL is set and falls back to
// the JSON data file otherwise.
func openStore(ctx context.Context, logger *slog.Logger) (store.Store, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := telemetry.OpenDB("postgres", databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		st, err := postgres.New(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		logger.Info("using postgres store")
		return st, func() { _ = db.Close() }, nil
	}

	path := os.Getenv("GERAI_DATA_FILE")
	if path == "" {
		path = "gerai-data.json"
	}

	st, err := file.New(path)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("using file store", "path", path)
	return st, func() {}, nil
}
