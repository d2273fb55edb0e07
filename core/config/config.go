package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"asset-pipeline/core/logger"
	"asset-pipeline/core/plugin"
	"asset-pipeline/core/server"
	"asset-pipeline/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional project configuration file, looked up without extension
// so that asset-pipeline.yaml, .yml, .json and .toml all work.
const FileName = "asset-pipeline"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Pipeline holds the asset layout shared with the bundler plugin.
	Pipeline plugin.Config `mapstructure:"pipeline"`
	// Server holds configuration for the development server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage used by remote cleanup.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration for the project in dir.
//
// Precedence, highest first: process environment, the project's .env file, the
// optional asset-pipeline config file, the `default` struct tags.
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is fine; variables may come from the shell or CI.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// PIPELINE_BUILD_DIRECTORY -> pipeline.build_directory
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every `mapstructure` key with its
// `default` tag. Registering a key, even with an empty default, is what makes
// AutomaticEnv pick it up during Unmarshal. Slice defaults are comma-separated.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
		case reflect.Slice:
			v.SetDefault(key, splitDefault(field.Tag.Get("default")))
		default:
			v.SetDefault(key, field.Tag.Get("default"))
		}
	}
}

func splitDefault(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
