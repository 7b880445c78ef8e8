package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"
	"github.com/redis/go-redis/v9"

	"github.com/wartakita/warta-admin/config"
	_ "github.com/wartakita/warta-admin/docs"
	"github.com/wartakita/warta-admin/internal/app"
	"github.com/wartakita/warta-admin/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "run database migrations before starting")
	cfg       config.Config
	lg        *slog.Logger
)

// @title Warta Admin API
// @version 1.0
// @description Admin backend for the Warta news site
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	if *flMigrate {
		if err := db.RunMigrations(ctx, databaseURL(&cfg), "migrations"); err != nil {
			exitOnError(err)
		}
		lg.Info("migrations applied")
	}

	dbConn := pg.Connect(&cfg.Database)
	if *flDebug {
		dbConn.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbConn.Ping(ctx); err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		dbConn.Close()
		exitOnError(err)
	}

	service := app.New(&cfg, dbConn, redisClient, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	_ = redisClient.Close()
	_ = dbConn.Close()
}

func databaseURL(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		cfg.Database.User, cfg.Database.Password, cfg.Database.Addr, cfg.Database.Database)
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
