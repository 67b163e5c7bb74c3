package config

import (
	"os"
	"strconv"
)

type Config struct {
	Importer ImporterConfig
	Logger   LoggerConfig
	Catalog  CatalogConfig
}

type ImporterConfig struct {
	AppEnv            string
	CategoriesPath    string
	UncategorizedID   string
	MetafieldKeyMode  string
	ResolveCategories bool
	PropagateStatus   bool
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type CatalogConfig struct {
	// SQLitePath enables the secondary SQLite catalog output when non-empty.
	SQLitePath string
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Importer: ImporterConfig{
			AppEnv:            getEnv("APP_ENV", "dev"),
			CategoriesPath:    getEnv("IMPORTER_CATEGORIES_PATH", "./data/seeded_categories.json"),
			UncategorizedID:   getEnv("IMPORTER_UNCATEGORIZED_ID", "gid://shopify/TaxonomyCategory/na"),
			MetafieldKeyMode:  getEnv("IMPORTER_METAFIELD_KEY_MODE", "label"),
			ResolveCategories: getEnvBool("IMPORTER_RESOLVE_CATEGORIES", true),
			PropagateStatus:   getEnvBool("IMPORTER_PROPAGATE_STATUS", true),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Catalog: CatalogConfig{
			SQLitePath: getEnv("CATALOG_SQLITE_PATH", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
