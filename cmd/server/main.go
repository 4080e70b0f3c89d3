package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"faq-service/internal/cache"
	"faq-service/internal/config"
	"faq-service/internal/http/handler"
	"faq-service/internal/realtime"
	"faq-service/internal/service"
	"faq-service/internal/store"
	"faq-service/internal/translate"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := config.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db, cfg.DBDriver, log); err != nil {
		return err
	}
	st := store.New(db)

	var readCache cache.Cache
	if cfg.UseRedis() {
		client, err := config.InitRedis(cfg)
		if err != nil {
			return err
		}
		readCache = cache.NewRedisCache(client, cfg.CachePrefix)
		log.Info("using redis cache", "addr", cfg.RedisAddr)
	} else {
		readCache = cache.NewMemoryCache()
		log.Warn("REDIS_ADDR not set, using in-process cache")
	}
	defer readCache.Close()

	if cfg.OpenAIKey == "" {
		log.Warn("OPENAI_API_KEY not set, translations will fail and fall back to English")
	}
	provider := translate.NewResilient(
		translate.NewOpenAIProvider(translate.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}),
		translate.ResilientConfig{
			Timeout:           cfg.TranslateTimeout,
			MaxRetries:        cfg.TranslateMaxRetries,
			BaseDelay:         500 * time.Millisecond,
			MaxDelay:          10 * time.Second,
			RequestsPerMinute: cfg.TranslateRPM,
		},
	)

	hub := realtime.NewFAQHub(log)
	go hub.Run(ctx)

	app := handler.NewApp(handler.AppDeps{
		Auth: service.NewAuthService(st, config.NewTokenIssuer(cfg), log),
		FAQs: service.NewFAQService(service.FAQServiceConfig{
			Store:      st,
			Cache:      readCache,
			Translator: translate.NewOrchestrator(provider, log),
			Events:     hub,
			CacheTTL:   cfg.CacheTTL,
			Logger:     log,
		}),
		Hub:           hub,
		Checks:        map[string]handler.Pinger{"database": st, "cache": readCache},
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: cfg.IsProduction(),
		AccessLog:     true,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.ServerAddr()
		log.Info("server listening", "addr", addr, "env", cfg.AppEnv)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
