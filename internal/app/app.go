package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/config"
	"github.com/GlebRadaev/adrewards/internal/handlers"
	"github.com/GlebRadaev/adrewards/internal/pg"
	"github.com/GlebRadaev/adrewards/internal/repo"
	"github.com/GlebRadaev/adrewards/internal/rollover"
	"github.com/GlebRadaev/adrewards/internal/service"
	"github.com/GlebRadaev/adrewards/pkg/auth"
	"github.com/GlebRadaev/adrewards/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Runner is a background loop that returns once ctx is done.
type Runner interface {
	Start(ctx context.Context)
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	rollover Runner

	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	sessions, err := a.sessionResolver(ctx, cfg)
	if err != nil {
		zap.L().Error("session store failed: ", zap.Error(err))
		return fmt.Errorf("can't init session store: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv, err = service.New(a.repo, cfg, sessions)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	if err = a.bootstrapOperator(ctx); err != nil {
		return fmt.Errorf("can't bootstrap operator: %w", err)
	}
	a.api = handlers.New(a.srv, sessions)
	a.rollover = rollover.New(cfg, a.repo.RolloverRepo)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startRollover(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// bootstrapOperator creates the operator account from OPERATOR_USERNAME and
// OPERATOR_PASSWORD. It is skipped when either is empty.
func (a *Application) bootstrapOperator(ctx context.Context) error {
	if a.cfg.OperatorUsername == "" || a.cfg.OperatorPassword == "" {
		zap.L().Info("operator bootstrap skipped")
		return nil
	}
	return a.srv.AuthService.EnsureOperator(ctx, a.cfg.OperatorUsername, a.cfg.OperatorEmail, a.cfg.OperatorPassword)
}

// sessionResolver builds the session store selected by SESSION_STORE.
func (a *Application) sessionResolver(ctx context.Context, cfg *config.Config) (auth.Resolver, error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		zap.L().Info("using jwt sessions", zap.Duration("ttl", cfg.TokenTTL))
		return auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL), nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	a.closers = append(a.closers, func() {
		if err := rdb.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	})
	zap.L().Info("using redis sessions", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.TokenTTL))
	return auth.NewRedisStore(rdb, cfg.TokenTTL), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startRollover(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.rollover.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	return appErr
}
