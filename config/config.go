package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Config carries every runtime setting as an explicit value. Nothing in the
// rest of the codebase reads the environment directly.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Port    string
	GinMode string

	// OrdersLimit caps the /orders listing.
	OrdersLimit int
	// RateLimit is the per-IP request budget per second.
	RateLimit int
	// DBTimeout bounds every store call made on behalf of a request.
	DBTimeout time.Duration
}

// Load reads configuration from the environment, falling back to development
// defaults. The password has no default on purpose.
func Load() Config {
	return Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "root"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "kitchen_chatbot"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", ""),
		OrdersLimit: getEnvInt("ORDERS_LIMIT", 20),
		RateLimit:   getEnvInt("RATE_LIMIT", 50),
		DBTimeout:   time.Duration(getEnvInt("DB_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

// DSN builds the MySQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// InitDB opens the MySQL connection described by the config.
func InitDB(c Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(c.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
