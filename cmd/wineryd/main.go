// Command wineryd serves the winery lookup API and, when ENRICH_ENABLED is set,
// runs the Kafka listing enrichment pipeline alongside it.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/S4ng4/winery-resolver/internal/adapter/cache"
	httpadapter "github.com/S4ng4/winery-resolver/internal/adapter/http"
	kafkaadapter "github.com/S4ng4/winery-resolver/internal/adapter/kafka"
	"github.com/S4ng4/winery-resolver/internal/catalog"
	"github.com/S4ng4/winery-resolver/internal/config"
	"github.com/S4ng4/winery-resolver/internal/observability"
	"github.com/S4ng4/winery-resolver/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	table, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load winery catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	metrics.CatalogEntries.Set(float64(table.Len()))
	logger.Info("winery catalog loaded", "entries", table.Len(), "embedded", cfg.CatalogPath == "")

	resolver := cache.NewCachedResolver(table, cfg.LookupCacheSize, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var ready sharedobs.ReadinessChecker = httpadapter.AlwaysReady
	var closers []func() error

	if cfg.EnrichEnabled {
		reader := kafkaadapter.NewReader(cfg, logger)
		writer := kafkaadapter.NewWriter(cfg, logger)
		closers = append(closers, reader.Close, writer.Close)

		transformer := pipeline.NewTransformer(resolver, logger)
		p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p

		logger.Info("listing enrichment enabled",
			"source_topic", cfg.KafkaSourceTopic,
			"sink_topic", cfg.KafkaSinkTopic,
			"group_id", cfg.KafkaGroupID,
		)
		g.Go(func() error { return p.Run(gctx) })
	} else {
		logger.Info("listing enrichment disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, table, resolver, ready, logger)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("service error", "error", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Error("kafka client close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
