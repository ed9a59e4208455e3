// segmenter-rpc serves the gRPC classification endpoint
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"segmenter/internal/platform/config"
	"segmenter/internal/platform/logger"
	pgrpc "segmenter/internal/platform/net/grpc"
	"segmenter/internal/platform/store"
	"segmenter/internal/platform/store/pg"

	"segmenter/internal/classify/engine"
	cgrpc "segmenter/internal/classify/grpc"
	"segmenter/internal/classify/repo"
	"segmenter/internal/classify/service"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Named("segmenter-rpc")

	root := config.New()
	rpcCfg := root.Prefix("RPC_")
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

	srv := pgrpc.NewServer(
		rpcCfg.MayPort("PORT", ":50051"),
		pgrpc.Options{Workers: uint32(rpcCfg.MayInt("WORKERS", 64))},
	)
	cgrpc.NewServer(svc, cgrpc.Options{
		MaxTextLen: clsCfg.MayInt("MAX_TEXT_LEN", 10000),
	}).Register(srv.Registrar())

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("grpc server stopped")
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
