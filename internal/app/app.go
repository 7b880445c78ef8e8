package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/wartakita/warta-admin/config"
	"github.com/wartakita/warta-admin/internal/auth"
	"github.com/wartakita/warta-admin/internal/db"
	"github.com/wartakita/warta-admin/internal/rest"
	"github.com/wartakita/warta-admin/internal/warta"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, redisClient *redis.Client, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	resolver := auth.NewResolver(auth.NewRedisStore(redisClient), repo)

	handler := rest.NewHandler(
		warta.NewManager(repo),
		resolver,
		rest.Uploads{
			Dir:     cfg.Upload.Dir,
			MaxSize: cfg.Upload.MaxSizeMB << 20,
		},
		logger,
	)

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
