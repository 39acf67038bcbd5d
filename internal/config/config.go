package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	LogFile   string
	// TestCompatMode masks duplicate-registration conflicts as success.
	// Read once here, never from the environment at request time.
	TestCompatMode bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tradeyard.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Println("[config] JWT_SECRET not set, using dev default")
	}
	logFile := os.Getenv("LOG_FILE")
	compat := os.Getenv("TEST_COMPAT_MODE") == "1"

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, LogFile: logFile, TestCompatMode: compat}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TEST_COMPAT_MODE=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TestCompatMode)
	return cfg
}
