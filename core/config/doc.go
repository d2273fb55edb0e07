// Package config provides configuration management for asset-pipeline.
//
// It utilizes Viper for loading configuration from environment variables, the
// project's .env file and an optional asset-pipeline.{yaml,json,toml} file.
// Defaults are declared next to each field with a `default` tag.
//
// # Configuration Structure
//
//   - Log: logging level, format, output and quiet mode
//   - Pipeline: plugin inputs, public/build directories, hot file, SSR output
//   - Server: dev server host, port, root and TLS files
//   - Storage: S3/MinIO credentials, bucket and prefix used by --remote
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Pipeline.HotFile)
package config
