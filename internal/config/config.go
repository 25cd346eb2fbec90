package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StoreDriver string

const (
	StoreMongo     StoreDriver = "mongo"
	StoreFirestore StoreDriver = "firestore"
)

const DefaultSeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

type Config struct {
	Port          string
	LogLevel      string
	StoreDriver   StoreDriver
	MongoURI      string
	MongoDatabase string
	ProjectID     string
	SeedURL       string
	SeedTimeout   time.Duration
	PathPrefix    string
	CORSOrigins   []string
}

// New reads the process environment. A .env file in the working directory is
// loaded first when present; variables already set take precedence.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		LogLevel:      getEnv("LOGLEVEL", "info"),
		StoreDriver:   getStoreDriver(os.Getenv("STOREDRIVER")),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "roxiler"),
		ProjectID:     os.Getenv("PROJECTID"),
		SeedURL:       getEnv("SEEDURL", DefaultSeedURL),
		SeedTimeout:   getDuration("SEEDTIMEOUT", 30*time.Second),
		PathPrefix:    getPathPrefix(getEnv("PATHPREFIX", "/roxiler")),
		CORSOrigins:   getList("CORSORIGINS", []string{"*"}),
	}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getStoreDriver(driver string) StoreDriver {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "firestore":
		return StoreFirestore
	default: // "mongo"
		return StoreMongo
	}
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getPathPrefix(prefix string) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return ""
	}
	return prefix
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
