// segmenter-api serves the REST classification endpoint
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"segmenter/internal/platform/config"
	"segmenter/internal/platform/logger"
	phttp "segmenter/internal/platform/net/http"
	"segmenter/internal/platform/net/middleware"
	"segmenter/internal/platform/store"
	"segmenter/internal/platform/store/pg"

	"segmenter/internal/classify/engine"
	chttp "segmenter/internal/classify/http"
	"segmenter/internal/classify/repo"
	"segmenter/internal/classify/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Named("segmenter-api")

	root := config.New()
	apiCfg := root.Prefix("API_")
	pgCfg := root.Prefix("PG_")
	clsCfg := root.Prefix("CLASSIFY_")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			PG: pg.Config{
				URL:            databaseURL(pgCfg),
				MinConns:       int32(pgCfg.MayInt("POOL_MIN", 1)),
				MaxConns:       int32(pgCfg.MayInt("POOL_MAX", 10)),
				AcquireTimeout: pgCfg.MayDuration("ACQUIRE_TIMEOUT", 2*time.Second),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := st.Guard(ctx); err != nil {
		l.Fatal().Err(err).Msg("database unreachable")
	}

	svc := service.New(
		st.DB,
		repo.NewPG(),
		engine.NewCleaner(),
		engine.NewKeywordScorer(),
		service.Options{StrictInference: clsCfg.MayBool("STRICT_INFERENCE", false)},
	)

	// best effort; the table usually exists already
	if err := svc.EnsureSchema(ctx); err != nil {
		l.Warn().Err(err).Msg("schema init failed; continuing")
	}

	workers := apiCfg.MayInt("WORKERS", 64)
	srv := phttp.NewServer(
		apiCfg.MayPort("PORT", ":8000"),
		func(m *chi.Mux) {
			m.Use(middleware.RequestID)
			m.Use(middleware.AccessLog)
			m.Use(middleware.RecoverJSON)
			m.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
			}))
			m.Use(middleware.Limit(workers))
		},
	)

	chttp.Register(srv.Router(), svc, chttp.Options{
		MaxBodyBytes: int64(apiCfg.MayInt("MAX_BODY_BYTES", 1<<20)),
		MaxTextLen:   clsCfg.MayInt("MAX_TEXT_LEN", 10000),
	})

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("shutdown complete")
}

// databaseURL prefers a full DBURL and falls back to discrete parts
func databaseURL(c config.Conf) string {
	if u := c.MayString("DBURL", ""); u != "" {
		return u
	}
	return pg.URL(
		c.MayString("HOST", "localhost"),
		c.MayString("PORT", "5432"),
		c.MayString("USER", "postgres"),
		c.MayString("PASSWORD", "postgres"),
		c.MayString("DBNAME", "segmenter"),
	)
}
