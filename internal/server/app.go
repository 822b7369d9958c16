// Package server wires the Desa Wisata API together: it opens the
// connection pool, applies migrations, builds the services and runs the
// HTTP server until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/dmitrijs2005/desawisata/internal/server/auth"
	"github.com/dmitrijs2005/desawisata/internal/server/config"
	"github.com/dmitrijs2005/desawisata/internal/server/httpapi"
	"github.com/dmitrijs2005/desawisata/internal/server/media"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/desawisata/internal/server/services"
	"github.com/dmitrijs2005/desawisata/internal/server/shared/db"
)

// openDB is a seam for tests.
var openDB = db.Open

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services *services.Services
	tokens   *auth.TokenManager
	metrics  *httpapi.Metrics
	media    *media.Presigner
}

// NewApp validates c, opens the pool and, unless disabled, migrates the
// schema. The caller owns the returned App and must Close it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	pool, err := openDB(ctx, db.PoolConfig{
		DSN:         c.DSN(),
		Size:        c.PoolSize,
		MaxOverflow: c.PoolMaxOverflow,
		Recycle:     c.PoolRecycle,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, pool); err != nil {
			_ = pool.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.AccessTokenTTL)
	passwords := auth.NewPasswordHasher(auth.DefaultIterations)

	metrics := httpapi.NewMetrics("desawisata")
	metrics.RegisterDB(pool, c.DBName)

	app := &App{
		config:   c,
		logger:   logger,
		db:       pool,
		services: services.New(pool, rm, tokens, passwords, c.PoolTimeout),
		tokens:   tokens,
		metrics:  metrics,
	}

	if c.MediaEnabled() {
		app.media = media.NewPresigner(media.Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			BaseEndpoint: c.S3BaseEndpoint,
			TTL:          c.S3PresignTTL,
		})
	}

	return app, nil
}

func (app *App) Services() *services.Services {
	return app.services
}

func (app *App) Logger() logging.Logger {
	return app.logger
}

func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
}

func (app *App) deps() httpapi.Deps {
	deps := httpapi.Deps{
		Auth:         app.services.Auth,
		Destinations: app.services.Destinations,
		Packages:     app.services.Packages,
		Blogs:        app.services.Blogs,
		Tokens:       app.tokens,
		DB:           app.db,
		Metrics:      app.metrics,
	}
	if app.media != nil {
		deps.Media = app.media
	}
	return deps
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.Address, app.logger, app.deps())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then closes the pool once in-flight requests have drained.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "config", app.config.String())

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "err", err)
	}
	app.logger.Info(ctx, "App stopped")
}
