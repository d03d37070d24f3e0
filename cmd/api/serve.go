package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cattle-farm-manager/internal/adapters/ai/gemini"
	"cattle-farm-manager/internal/adapters/auth/jwtauth"
	"cattle-farm-manager/internal/adapters/auth/remote"
	"cattle-farm-manager/internal/adapters/changefeed/redisfeed"
	pg "cattle-farm-manager/internal/adapters/storage/postgres"
	"cattle-farm-manager/internal/config"
	"cattle-farm-manager/internal/domain/topics"
	"cattle-farm-manager/internal/ports/auth"
	"cattle-farm-manager/internal/ports/changefeed"
	"cattle-farm-manager/internal/router"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "aplicar el esquema de Postgres antes de servir")
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		if migrateOnStart {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("schema applied")
		}
	}

	var feed changefeed.Feed
	if addr := cfg.Redis.Addr; addr != "" {
		rf, err := redisfeed.New(ctx, redisfeed.Options{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}, log.Named("changefeed"))
		if err != nil {
			return err
		}
		defer rf.Close()
		feed = rf
	}

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		return err
	}

	var gen topics.Generator
	if key := cfg.AI.APIKey; key != "" {
		g, err := gemini.New(ctx, key, cfg.AI.Model)
		if err != nil {
			return err
		}
		gen = g
	}

	h, err := router.NewRouter(ctx, router.Options{
		Logger:          log,
		AuthVerifier:    verifier,
		DB:              db,
		Feed:            feed,
		AI:              gen,
		AdminAccountIDs: cfg.Auth.AdminAccountIDs,
		Location:        loc,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("auth_mode", cfg.Auth.Mode),
			zap.Bool("postgres", db != nil),
			zap.Bool("redis", feed != nil),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down server")
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}

// openDB devuelve nil sin DSN: el router cae a repositorios en memoria.
func openDB(ctx context.Context) (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		log.Warn("database.dsn empty, using in-memory storage")
		return nil, nil
	}
	return pg.Open(ctx, cfg.Database.DSN, cfg.Database.ConnectRetries, log.Named("postgres"))
}

func newVerifier(a config.AuthConfig) (auth.AuthVerifier, error) {
	switch a.Mode {
	case config.AuthModeJWT:
		return jwtauth.NewVerifier(a.JWTSecret, a.JWTIssuer), nil
	case config.AuthModeRemote:
		return remote.NewVerifier(remote.Config{
			BaseURL: a.RemoteURL,
			APIKey:  a.RemoteAPIKey,
		})
	default:
		log.Warn("auth.mode=dev: X-Debug-User-ID header accepted, do not use in production")
		return nil, nil
	}
}
