// Package config provides configuration management for the Inventory Viewer.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and the bucket holding mapping files
//   - Log: Logging level and format
//   - Mapping: mapping source (none, dir, bucket), folder and key prefix
//   - Inventory: dedup, parse workers and the watch folder
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
