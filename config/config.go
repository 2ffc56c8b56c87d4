package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// DiscordToken is consumed only by the chat-platform connector sitting in
	// front of this service; the core never reads it.
	DiscordToken string
	DatabasePath string
	ServerPort   int
	ModalTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load() // Ошибку не считаем фатальной.

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable is not set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "league_signups.sqlite3"
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080" // Порт по умолчанию
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	timeoutStr := os.Getenv("MODAL_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "600" // Организатору даётся 10 минут на заполнение модального окна.
	}
	timeoutSec, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid MODAL_TIMEOUT_SECONDS environment variable: %q", timeoutStr)
	}

	cfg := &Config{
		DiscordToken: token,
		DatabasePath: dbPath,
		ServerPort:   port,
		ModalTimeout: time.Duration(timeoutSec) * time.Second,
	}

	return cfg, nil
}
