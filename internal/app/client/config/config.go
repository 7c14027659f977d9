package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv            = "prod"
	defaultLogLevel       = "info"
	defaultConfigDir      = ".pocketapp"
	defaultStoreDriver    = "sqlite"
	defaultDataFile       = "profile.db"
	defaultRedisAddr      = "localhost:6379"
	defaultPicsumURL      = "https://picsum.photos"
	defaultHTTPTimeout    = 30
	defaultImageMaxID     = 1000
	defaultRefreshDelayMS = 1000
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	LogLevel       string        `mapstructure:"log_level"`
	ConfigDir      string        `mapstructure:"config_dir"`
	StoreDriver    string        `mapstructure:"store_driver"`
	DataPath       string        `mapstructure:"data_path"`
	RedisAddr      string        `mapstructure:"redis_addr"`
	DatabaseURI    string        `mapstructure:"database_uri"`
	MigrationsPath string        `mapstructure:"migrations_path"`
	PicsumURL      string        `mapstructure:"picsum_url"`
	HTTPTimeout    time.Duration `mapstructure:"-"`
	ImageMaxID     int           `mapstructure:"image_max_id"`
	RefreshDelay   time.Duration `mapstructure:"-"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и значения, уже загруженные во viper.
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("STORE_DRIVER", defaultStoreDriver)
	viper.SetDefault("REDIS_ADDR", defaultRedisAddr)
	viper.SetDefault("PICSUM_URL", defaultPicsumURL)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)
	viper.SetDefault("IMAGE_MAX_ID", defaultImageMaxID)
	viper.SetDefault("FEED_REFRESH_DELAY_MS", defaultRefreshDelayMS)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		StoreDriver:    viper.GetString("STORE_DRIVER"),
		DataPath:       dataPath,
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		DatabaseURI:    viper.GetString("DATABASE_URI"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		PicsumURL:      viper.GetString("PICSUM_URL"),
		HTTPTimeout:    time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		ImageMaxID:     viper.GetInt("IMAGE_MAX_ID"),
		RefreshDelay:   time.Duration(viper.GetInt("FEED_REFRESH_DELAY_MS")) * time.Millisecond,
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case "sqlite", "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("redis_addr не может быть пустым")
		}
	case "postgres":
		if c.DatabaseURI == "" {
			return fmt.Errorf("database_uri не может быть пустым")
		}
	default:
		return fmt.Errorf("неизвестный store_driver: %q", c.StoreDriver)
	}
	if c.ImageMaxID <= 0 {
		return fmt.Errorf("image_max_id должен быть положительным")
	}
	if c.RefreshDelay < 0 {
		return fmt.Errorf("feed_refresh_delay_ms не может быть отрицательным")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
