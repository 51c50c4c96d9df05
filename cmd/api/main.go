package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shoplite/shoplite-backend/api/routes"
	"github.com/shoplite/shoplite-backend/internal/announcements"
	"github.com/shoplite/shoplite-backend/internal/codepool"
	"github.com/shoplite/shoplite-backend/internal/courses"
	"github.com/shoplite/shoplite-backend/internal/dashboard"
	"github.com/shoplite/shoplite-backend/internal/files"
	"github.com/shoplite/shoplite-backend/internal/orders"
	"github.com/shoplite/shoplite-backend/internal/products"
	"github.com/shoplite/shoplite-backend/internal/transfer"
	"github.com/shoplite/shoplite-backend/pkg/config"
	"github.com/shoplite/shoplite-backend/pkg/docstore"
	"github.com/shoplite/shoplite-backend/pkg/logger"
	"github.com/shoplite/shoplite-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := docstore.New(cfg.Store.DataDir, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open document store", err)
		os.Exit(1)
	}

	productSvc, err := products.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	codePoolSvc, err := codepool.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create code pool service", err)
		os.Exit(1)
	}

	orderSvc, err := orders.NewService(store, productSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	fileSvc, err := files.NewService(store, cfg.Store.UploadsDir)
	if err != nil {
		logg.Error(context.Background(), "failed to create file service", err)
		os.Exit(1)
	}

	courseSvc, err := courses.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create course service", err)
		os.Exit(1)
	}

	postSvc, err := announcements.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create announcements service", err)
		os.Exit(1)
	}

	dashSvc, err := dashboard.NewService(orderSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	transferSvc, err := transfer.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create transfer service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"data_dir": store.Dir(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			Store:         store,
			Registry:      registry,
			HTTPMetrics:   httpMetrics,
			Products:      productSvc,
			Orders:        orderSvc,
			CodePool:      codePoolSvc,
			Files:         fileSvc,
			Courses:       courseSvc,
			Announcements: postSvc,
			Dashboard:     dashSvc,
			Transfer:      transferSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
