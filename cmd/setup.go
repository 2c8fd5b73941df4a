package cmd

import (
	"context"
	"fmt"

	"inventory-viewer/core/config"
	"inventory-viewer/core/logger"
	"inventory-viewer/core/storage"
	"inventory-viewer/feature/inventory"
	"inventory-viewer/feature/inventory/mapping"

	"go.uber.org/zap"
)

// bootstrap loads the configuration, the logger and the mapping provider.
// The storage client is only created for the bucket source.
func bootstrap() (*config.Config, *zap.Logger, mapping.Provider, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var client storage.Client
	if cfg.Mapping.Source == mapping.ProviderBucket {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	provider, err := mapping.NewProvider(cfg.Mapping, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logg, provider, nil
}

// preloadMapping builds the registry from the configured source. Failures only degrade
// name resolution, so they are logged and not returned.
func preloadMapping(ctx context.Context, svc *inventory.Service, logg *zap.Logger) {
	report, err := svc.LoadMapping(ctx)
	if err != nil {
		logg.Warn("Mapping not loaded, ids will not be resolved", zap.Error(err))
		return
	}
	logg.Info("Mapping loaded",
		zap.String("source", report.Source),
		zap.Any("added", report.Build.Added),
		zap.Bool("ready", report.Build.Ready))
}
