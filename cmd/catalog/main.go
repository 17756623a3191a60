package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/pkg/kit"
)

func main() {
	service := "catalog"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	// Prices go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	port := getenv("PORT", "8082")

	tp, err := kit.NewTracerProvider(ctx, kit.TracingConfig{
		ServiceName: getenv("OTEL_SERVICE_NAME", service),
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	})
	if err != nil {
		log.Fatal("init tracing failed", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(sctx)
	}()

	store, closeStore := openStore(ctx, log)
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := catalog.NewHandler(&catalog.Server{Store: store, Log: log}, catalog.HTTPDeps{
		Log:             log,
		Service:         service,
		Registry:        reg,
		MetricsEnabled:  true,
		MetricsToken:    os.Getenv("METRICS_TOKEN"),
		RateLimitPerMin: getenvInt("RATE_LIMIT_PER_MIN", 0),
	})

	if err := kit.RunHTTPServer(ctx, ":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// openStore uses Postgres when DATABASE_URL is set and the demo catalog
// otherwise.
func openStore(ctx context.Context, log *zap.Logger) (catalog.Store, func()) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Info("DATABASE_URL not set, serving demo catalog from memory")
		return catalog.NewStore(), func() {}
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal("connect postgres failed", zap.Error(err))
	}

	store := catalog.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		log.Fatal("migrate products table failed", zap.Error(err))
	}
	return store, pool.Close
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
