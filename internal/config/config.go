package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host      string
	Port      string
	Password  string
	KeyPrefix string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Storage struct {
	// One of StorageMemory, StorageRedis, StoragePostgres.
	Backend string
	// Zero keeps preferences until the session's storage is dropped.
	TTL time.Duration
}

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type MCP struct {
	Transport      string
	ServerName     string
	ServerVersion  string
	DefaultSession string
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Storage  Storage
	MCP      MCP
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	log.Printf("%s backend config : %+v\n", logtag, cfg.redacted())
	return cfg
}

// FromEnv builds the config from the current environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Storage:  *newStorage(),
		MCP:      *newMCP(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:      getenv("REDIS_PORT", "6379"),
		Host:      getenv("REDIS_HOST", "redis"),
		Password:  getenv("REDIS_PASSWORD", "shared"),
		KeyPrefix: getenv("REDIS_KEY_PREFIX", "session_prefs"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "moviepick"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newStorage() *Storage {
	backend := getenv("STORAGE_BACKEND", StorageMemory)
	switch backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		log.Fatalf("%s unknown STORAGE_BACKEND %q", logtag, backend)
	}

	ttl, err := time.ParseDuration(getenv("PREFERENCES_TTL", "0s"))
	if err != nil {
		log.Fatalf("%s bad PREFERENCES_TTL : %v", logtag, err)
	}

	return &Storage{
		Backend: backend,
		TTL:     ttl,
	}
}

func newMCP() *MCP {
	transport := getenv("MCP_TRANSPORT", TransportHTTP)
	if transport != TransportHTTP && transport != TransportStdio {
		log.Fatalf("%s unknown MCP_TRANSPORT %q", logtag, transport)
	}

	return &MCP{
		Transport:      transport,
		ServerName:     getenv("MCP_SERVER_NAME", "moviepick"),
		ServerVersion:  getenv("MCP_SERVER_VERSION", "0.1.0"),
		DefaultSession: getenv("MCP_DEFAULT_SESSION", "default"),
	}
}

func (c Config) redacted() Config {
	if c.Redis.Password != "" {
		c.Redis.Password = "***"
	}
	if c.Postgres.Password != "" {
		c.Postgres.Password = "***"
	}
	return c
}

// getenv prints to stderr: stdout belongs to the stdio transport.
func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Fprintf(os.Stderr, "%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Fprintf(os.Stderr, "%s %s = %s\n", logtag, key, val)
	return val
}
