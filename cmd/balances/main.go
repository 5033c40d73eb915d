package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"facilitator_balances/internal/app/service"
	"facilitator_balances/internal/config"
	"facilitator_balances/internal/infrastructure/chainclient"
	networkdefinition "facilitator_balances/internal/infrastructure/network/definition"
	"facilitator_balances/internal/infrastructure/restapi"
	"facilitator_balances/internal/infrastructure/secrets"
	"facilitator_balances/internal/pkg/logger"
	"facilitator_balances/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	// Bootstrap logging for the config-load phase before zap is configured.
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Warnf("Config file unavailable (%v), continuing with defaults", err)
		cfg = config.Default()
	}

	zapLogger := logger.New(cfg.Logging.Level)
	defer zapLogger.Sync()
	logger.InstallSlogBridge(zapLogger)

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	networks := networkdefinition.NewRegistry()

	var store *secrets.Resolver
	if cfg.Secrets.File != "" {
		fileStore := secrets.NewFileStore(map[string]string{cfg.Secrets.Name: cfg.Secrets.File}, zapLogger)
		store = secrets.NewResolver(fileStore, cfg.Secrets.Name, zapLogger)
	} else {
		zapLogger.Info("No secret file configured, privileged RPC tier disabled")
		store = secrets.NewResolver(nil, cfg.Secrets.Name, zapLogger)
	}

	rpcTimeout := time.Duration(cfg.Performance.RPCCallTimeoutSeconds) * time.Second
	nearTimeout := time.Duration(cfg.Performance.NearCallTimeoutSeconds) * time.Second

	fetcher := chainclient.NewWalker([]chainclient.Codec{
		chainclient.NewEVMCodec(rpcTimeout),
		chainclient.NewSolanaCodec(rpcTimeout),
		chainclient.NewSuiCodec(rpcTimeout),
		chainclient.NewNEARCodec(nearTimeout),
		chainclient.NewStellarCodec(rpcTimeout),
		chainclient.NewAlgorandCodec(rpcTimeout),
	}, cfg.Performance.OutboundRequestsPerSecond, m, zapLogger)

	aggregator := service.NewBalanceService(
		networks,
		store,
		fetcher,
		zapLogger,
		cfg.Performance.MaxConcurrentFetches,
		time.Duration(cfg.Performance.AggregationTimeoutSeconds)*time.Second,
	)
	cache := service.NewSnapshotCache(aggregator, cfg.Cache.TTLSeconds, m, zapLogger)

	router := restapi.SetupRouter(restapi.NewBalanceHandler(cache, zapLogger), registry)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
