package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config - dastur konfiguratsiyasi
type Config struct {
	// Server
	ServerPort string

	// Dern-Support backend API
	APIBaseURL string
	APITimeout time.Duration

	// Redis (sessiya ombori va rate limit; bo'sh bo'lsa xotira ishlatiladi)
	RedisAddr     string
	RedisPassword string

	// Environment
	Environment string // "development", "production"
}

// Load - konfiguratsiyani yuklash
func Load() *Config {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		APIBaseURL: getEnv("API_BASE_URL", "https://dern-support-back1.vercel.app/api/v1"),
		APITimeout: getDuration("API_TIMEOUT_SECONDS", 30),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		Environment: getEnv("ENVIRONMENT", "development"),
	}

	// Config log (sirlarni yashirish)
	log.Println("⚙️ Configuration loaded:")
	log.Printf("   API: %s (timeout %s)", cfg.APIBaseURL, cfg.APITimeout)
	log.Printf("   Server Port: %s", cfg.ServerPort)
	if cfg.RedisAddr != "" {
		log.Printf("   Redis: %s", cfg.RedisAddr)
	} else {
		log.Printf("   Redis: o'chirilgan (xotira ombori)")
	}
	log.Printf("   Environment: %s", cfg.Environment)

	return cfg
}

// getEnv - environment variable olish (default bilan)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration - soniyalarda berilgan env qiymatini o'qish
func getDuration(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

// IsDevelopment - development muhitmi
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction - production muhitmi
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasRedis - Redis sozlanganmi
func (c *Config) HasRedis() bool {
	return c.RedisAddr != ""
}
