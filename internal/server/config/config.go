package config

import (
	"flag"
	"fmt"
	"time"
)

const (
	// DefaultAddr адрес HTTP сервера по умолчанию
	DefaultAddr = ":8080"
	// DefaultDBPath путь к файлу SQLite по умолчанию
	DefaultDBPath = "authd.db"
	// DefaultTokenTTLSeconds время жизни session token по умолчанию
	DefaultTokenTTLSeconds = 3600
	// EnvJWTSecret имя переменной окружения с секретом подписи.
	// Секрет передается только через окружение, не через флаг,
	// чтобы не светился в списке процессов
	EnvJWTSecret = "AUTHD_JWT_SECRET"
)

// Config содержит конфигурацию сервера
// Загружается один раз при старте процесса и далее не меняется
type Config struct {
	Addr      string        // адрес HTTP сервера
	DBPath    string        // путь к файлу SQLite
	JWTSecret string        // секрет подписи токенов, никогда не логируется
	TokenTTL  time.Duration // время жизни session token
	Debug     bool          // debug уровень логирования
}

// Load разбирает флаги и окружение
// args - аргументы командной строки без имени программы
// getenv - функция чтения окружения (os.Getenv в production)
// Отсутствие секрета подписи это фатальная ошибка конфигурации
func Load(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("authd", flag.ContinueOnError)

	addr := fs.String("addr", DefaultAddr, "HTTP listen address")
	dbPath := fs.String("db", DefaultDBPath, "Path to SQLite database file")
	tokenTTL := fs.Int("token-ttl", DefaultTokenTTLSeconds, "Session token lifetime in seconds")
	debug := fs.Bool("debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	secret := getenv(EnvJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("%s must be set to a non-empty signing secret", EnvJWTSecret)
	}

	if *tokenTTL <= 0 {
		return nil, fmt.Errorf("token-ttl must be positive, got %d", *tokenTTL)
	}

	return &Config{
		Addr:      *addr,
		DBPath:    *dbPath,
		JWTSecret: secret,
		TokenTTL:  time.Duration(*tokenTTL) * time.Second,
		Debug:     *debug,
	}, nil
}
