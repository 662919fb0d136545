package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/infoyupay/gang-comisiones-sub002/internal/audit"
	"github.com/infoyupay/gang-comisiones-sub002/internal/observability/metrics"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/application"
	ticketpostgres "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/infrastructure/postgres"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/interfaces"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init(db, logger)
	auditRepo := audit.NewRepository(db)
	snapshotRepo := ticketpostgres.NewSnapshotRepository(db)

	exportCfg, err := application.LoadConfig()
	if err != nil {
		logger.Fatalf("export config error: %v", err)
	}
	pool, err := application.NewWorkerPool(exportCfg.Workers, exportCfg.QueueSize)
	if err != nil {
		logger.Fatalf("worker pool error: %v", err)
	}
	defer pool.Shutdown()

	exporter, err := application.NewExporter(pool)
	if err != nil {
		logger.Fatalf("exporter error: %v", err)
	}
	exportHandler, err := interfaces.NewExportHandler(snapshotRepo, exporter, auditRepo, logger)
	if err != nil {
		logger.Fatalf("export handler error: %v", err)
	}
	reportHandler, err := interfaces.NewReportHandler(snapshotRepo, auditRepo, logger)
	if err != nil {
		logger.Fatalf("report handler error: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/transactions/", exportHandler)
	mux.Handle("/api/v1/reports/daily", reportHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(mux, logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
