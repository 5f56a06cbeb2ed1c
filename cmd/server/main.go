package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/alumnifc/clubledger/internal/auth"
	"github.com/alumnifc/clubledger/internal/config"
	"github.com/alumnifc/clubledger/internal/finance"
	"github.com/alumnifc/clubledger/internal/metrics"
	"github.com/alumnifc/clubledger/internal/middleware"
	"github.com/alumnifc/clubledger/internal/service"
	"github.com/alumnifc/clubledger/internal/storage/sqlite"
	"github.com/alumnifc/clubledger/pkg/clubapi"
	"github.com/alumnifc/clubledger/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	logger := slog.Default()

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	diningCap, err := cfg.Finance.Cap()
	if err != nil {
		logger.Error("Invalid dining cap", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine := finance.New(store,
		finance.WithMetrics(metrics.New(reg)),
		finance.WithDiningCap(diningCap),
		finance.WithBailoutHandler(cfg.Finance.BailoutHandler),
		finance.WithLogger(logger),
	)

	var interceptors []connect.Interceptor
	var authSvc *service.AuthService
	if cfg.Auth.Enabled() {
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration())
		authSvc = service.NewAuthService(auth.NewOperatorAuthenticator(cfg.Auth.Operators), jwtManager, logger)
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, clubapi.AuthServiceLoginProcedure))
		logger.Info("Operator auth enabled", "operators", len(cfg.Auth.Operators))
	} else {
		logger.Warn("Operator auth disabled; every RPC is open")
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor(logger))
	opts := connect.WithInterceptors(interceptors...)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(corsMiddleware)

	// Register Connect services
	router.Mount(clubapi.NewPlayerServiceHandler(service.NewPlayerService(engine), opts))
	router.Mount(clubapi.NewFinanceServiceHandler(service.NewFinanceService(engine), opts))
	router.Mount(clubapi.NewMatchServiceHandler(service.NewMatchService(engine), opts))
	if authSvc != nil {
		router.Mount(clubapi.NewAuthServiceHandler(authSvc, opts))
	}

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for gRPC clients)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Connect server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
