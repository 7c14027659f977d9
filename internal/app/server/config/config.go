package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env     string
	DB      db
	Store   store
	Server  server
	Logger  logger
	Explore explore
	Feed    feed
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type store struct {
	Driver    string `env:"STORE_DRIVER" envDefault:"sqlite"`
	DataPath  string `env:"DATA_PATH" envDefault:"pocketapp.db"`
	RedisAddr string `env:"REDIS_ADDR"`
}

type server struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"10"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type explore struct {
	PicsumURL   string        `env:"PICSUM_URL"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT_SECONDS"`
	MaxID       int           `env:"IMAGE_MAX_ID"`
}

type feed struct {
	RefreshDelay time.Duration `env:"FEED_REFRESH_DELAY_MS"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("shutdown_timeout_seconds", 10)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("store_driver", "sqlite")
	viper.SetDefault("data_path", "pocketapp.db")
	viper.SetDefault("redis_addr", "localhost:6379")
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("picsum_url", "https://picsum.photos")
	viper.SetDefault("http_timeout_seconds", 30)
	viper.SetDefault("image_max_id", 1000)
	viper.SetDefault("feed_refresh_delay_ms", 1000)

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Store: store{
			Driver:    viper.GetString("store_driver"),
			DataPath:  viper.GetString("data_path"),
			RedisAddr: viper.GetString("redis_addr"),
		},
		Server: server{
			RunAddress:      viper.GetString("run_address"),
			ShutdownTimeout: time.Duration(viper.GetInt("shutdown_timeout_seconds")) * time.Second,
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
		Explore: explore{
			PicsumURL:   viper.GetString("picsum_url"),
			HTTPTimeout: time.Duration(viper.GetInt("http_timeout_seconds")) * time.Second,
			MaxID:       viper.GetInt("image_max_id"),
		},
		Feed: feed{
			RefreshDelay: time.Duration(viper.GetInt("feed_refresh_delay_ms")) * time.Millisecond,
		},
	}

	return &config
}
