package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Catalog remote sources
const (
	SourceMongo     = "mongo"
	SourceFirestore = "firestore"
	SourceNone      = "none"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Firestore FirestoreConfig `mapstructure:"firestore"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release, test
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	FormatJSON bool   `mapstructure:"format_json"`
	File       string `mapstructure:"file"` // empty means stdout only
	ToStdout   bool   `mapstructure:"to_stdout"`
}

// CatalogConfig controls where the exercise catalog comes from.
type CatalogConfig struct {
	Source           string        `mapstructure:"source"`     // mongo, firestore or none
	LocalPath        string        `mapstructure:"local_path"` // local cache file, .json or .yaml
	EmbeddedFallback bool          `mapstructure:"embedded_fallback"`
	SnapshotKey      string        `mapstructure:"snapshot_key"` // object key of the S3 snapshot
	LoadTimeout      time.Duration `mapstructure:"load_timeout"`
	RefreshInterval  time.Duration `mapstructure:"refresh_interval"` // 0 disables periodic reloads
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type FirestoreConfig struct {
	ProjectID  string `mapstructure:"project_id"`
	Collection string `mapstructure:"collection"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

// JWTConfig holds the secret used to verify admin bearer tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type CacheConfig struct {
	SizeMB int           `mapstructure:"size_mb"` // 0 disables the search cache
	TTL    time.Duration `mapstructure:"ttl"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, catalog.refresh_interval -> CATALOG_REFRESH_INTERVAL
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format_json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.to_stdout", true)
	v.SetDefault("catalog.source", SourceMongo)
	v.SetDefault("catalog.local_path", "data/exercises.json")
	v.SetDefault("catalog.embedded_fallback", true)
	v.SetDefault("catalog.snapshot_key", "catalog/exercises.json")
	v.SetDefault("catalog.load_timeout", "30s")
	v.SetDefault("catalog.refresh_interval", "0s")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_catalog")
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.collection", "exercises")
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("cache.size_mb", 16)
	v.SetDefault("cache.ttl", "10m")

	// A missing config file is fine, defaults and env vars still apply.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	return config, config.Validate()
}

// Validate checks values viper cannot check by type alone.
func (c Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.New("server.mode must be one of debug, release, test")
	}
	switch c.Catalog.Source {
	case SourceMongo, SourceFirestore, SourceNone:
	default:
		return errors.New("catalog.source must be one of mongo, firestore, none")
	}
	if c.Catalog.LoadTimeout <= 0 {
		return errors.New("catalog.load_timeout must be positive")
	}
	if c.Catalog.Source == SourceFirestore && c.Firestore.ProjectID == "" {
		return errors.New("firestore.project_id is required when catalog.source is firestore")
	}
	if c.S3.Enabled && c.S3.BucketName == "" {
		return errors.New("s3.bucket_name is required when s3 is enabled")
	}
	if c.Catalog.Source == SourceNone && c.Catalog.LocalPath == "" && !c.Catalog.EmbeddedFallback && !c.S3.Enabled {
		return errors.New("no catalog tier configured")
	}
	return nil
}
