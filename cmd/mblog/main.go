package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/mblog/internal/cache"
	"github.com/xxxsen/mblog/internal/config"
	"github.com/xxxsen/mblog/internal/handler"
	"github.com/xxxsen/mblog/internal/job"
	"github.com/xxxsen/mblog/internal/middleware"
	"github.com/xxxsen/mblog/internal/pkg/token"
	"github.com/xxxsen/mblog/internal/schedule"
	"github.com/xxxsen/mblog/internal/service"
	"github.com/xxxsen/mblog/internal/store"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "mblog",
		Short: "mblog server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run mblog server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			// .env is optional; real env vars still apply without it
			_ = godotenv.Load()
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("supabase_url", cfg.Supabase.URL),
	)

	st := store.NewSupabaseStore(
		cfg.Supabase.URL,
		cfg.Supabase.APIKey,
		time.Duration(cfg.Supabase.TimeoutSeconds)*time.Second,
	)
	articleCache := cache.NewArticleCache(
		cfg.Cache.MaxEntries,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
	)
	tokens := token.NewService(
		[]byte(cfg.Auth.JWTSecret),
		24*time.Hour*time.Duration(cfg.Auth.TokenTTLDays),
	)
	session := middleware.NewSession(tokens, cfg.Auth.CookieName, cfg.Auth.CookieMaxAgeSec, cfg.Auth.CookieSecure)

	authService := service.NewAuthService(st, tokens)
	articleService := service.NewArticleService(st, articleCache)

	router := handler.NewRouter(handler.RouterDeps{
		Articles: handler.NewArticleHandler(articleService),
		Auth:     handler.NewAuthHandler(authService, session),
		Session:  session,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if cfg.KeepAlive.Enabled {
		if err := scheduler.AddJob(job.NewKeepAliveJob(st, articleCache), cfg.KeepAlive.Spec); err != nil {
			return fmt.Errorf("schedule keepalive: %w", err)
		}
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: router,
	}
	go func() {
		logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
