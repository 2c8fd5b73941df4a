package mapping

import (
	"fmt"

	"inventory-viewer/core/storage"
)

const (
	ProviderNone   = "none"
	ProviderDir    = "dir"
	ProviderBucket = "bucket"
)

// Config selects where auxiliary mapping files are loaded from.
type Config struct {
	// Source is one of none, dir or bucket.
	Source string `mapstructure:"source" default:"dir"`
	// Dir is the local folder used by the dir source.
	Dir string `mapstructure:"dir" default:"data"`
	// Prefix is the object key prefix used by the bucket source.
	Prefix string `mapstructure:"prefix" default:""`
}

// NewProvider builds the provider named by cfg. The none source yields a nil provider.
// The client is only used by the bucket source and may be nil otherwise.
func NewProvider(cfg Config, client storage.Client, bucket string) (Provider, error) {
	switch cfg.Source {
	case ProviderNone, "":
		return nil, nil
	case ProviderDir:
		return NewDirProvider(cfg.Dir), nil
	case ProviderBucket:
		if client == nil {
			return nil, fmt.Errorf("mapping source %q requires a storage client", cfg.Source)
		}
		return NewBucketProvider(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown mapping source: %s", cfg.Source)
	}
}
