package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Engine  EngineConfig
	Log     LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	storage, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}

	engine, err := loadEngineConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Storage: storage, Engine: engine, Log: loadLogConfig()}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// StorageConfig 描述会话记录的持久化方式。
type StorageConfig struct {
	Backend     string
	DatabaseURL string
}

func loadStorageConfig() (StorageConfig, error) {
	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", BackendMemory))
	cfg := StorageConfig{
		Backend:     backend,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	switch backend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return StorageConfig{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=%s", BackendPostgres)
		}
	default:
		return StorageConfig{}, fmt.Errorf("invalid STORAGE_BACKEND value %q", backend)
	}
	return cfg, nil
}

// EngineConfig 控制情绪识别与回复选择。
type EngineConfig struct {
	Seed           *uint64
	MaxImagePixels int
}

func loadEngineConfig() (EngineConfig, error) {
	seed, err := parseOptionalUintEnv("LUMOS_RANDOM_SEED")
	if err != nil {
		return EngineConfig{}, err
	}

	maxPixels, err := parseOptionalIntEnv("LUMOS_MAX_IMAGE_PIXELS")
	if err != nil {
		return EngineConfig{}, err
	}
	cfg := EngineConfig{Seed: seed}
	if maxPixels != nil {
		if *maxPixels < 1 {
			return EngineConfig{}, fmt.Errorf("invalid LUMOS_MAX_IMAGE_PIXELS value %d", *maxPixels)
		}
		cfg.MaxImagePixels = *maxPixels
	}
	return cfg, nil
}

// LogConfig 描述日志级别与输出格式。
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalUintEnv(key string) (*uint64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
