package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/config"
	dbpkg "github.com/BruksfildServices01/table-reservations/internal/db"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservations/internal/logging"
	"github.com/BruksfildServices01/table-reservations/internal/ratelimit"
	"github.com/BruksfildServices01/table-reservations/internal/routes"
)

// store bundles the reservation repository with the audit sink and reader
// backed by the same connection.
type store struct {
	repo      domain.Repository
	sink      audit.Sink
	auditLogs audit.Store
	close     func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*store, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on exit")
		auditLogs := audit.NewMemoryStore()
		return &store{
			repo:      repository.NewReservationMemoryRepository(),
			sink:      audit.MultiSink{audit.NewLogSink(log), auditLogs},
			auditLogs: auditLogs,
			close:     func(context.Context) error { return nil },
		}, nil
	}

	db, err := dbpkg.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	log.Info("database connected")

	auditLogs := audit.NewMongoStore(db.AuditLogs())
	return &store{
		repo:      repository.NewReservationMongoRepository(db.Reservations(), log),
		sink:      auditLogs,
		auditLogs: auditLogs,
		close:     db.Close,
	}, nil
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to connect to database, the service cannot run without it")
		return err
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			log.WithError(err).Warn("failed to close database connection")
		}
	}()
	_ = st.repo.EnsureIndexes(ctx)

	var limiter ratelimit.Limiter = ratelimit.Noop{}
	if cfg.LoginLimit.RedisURL != "" {
		client, err := ratelimit.Connect(ctx, cfg.LoginLimit.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = ratelimit.NewRedisLimiter(client, cfg.LoginLimit.Attempts, cfg.LoginLimit.Window)
	}

	credentials, err := auth.NewCredentials(
		auth.DemoAccount{Username: cfg.Demo.EmployeeUser, Password: cfg.Demo.EmployeePass, Role: auth.RoleEmployee},
		auth.DemoAccount{Username: cfg.Demo.GuestUser, Password: cfg.Demo.GuestPass, Role: auth.RoleGuest},
	)
	if err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(st.sink, log)
	defer dispatcher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, routes.Deps{
		Repo:        st.repo,
		Audit:       dispatcher,
		AuditLogs:   st.auditLogs,
		Issuer:      auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry),
		Credentials: credentials,
		Limiter:     limiter,
		Registry:    registry,
		Log:         log,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("server running on http://localhost%s/graphql", cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
