package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Gemini  GeminiConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Scraper ScraperConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	// Path to the sqlite database file.
	Path string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	ArtifactTTL time.Duration
}

type ScraperConfig struct {
	UserAgent string
	Timeout   time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Path: viper.GetString("db.path"),
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("gemini.api_key"),
			Model:       viper.GetString("gemini.model"),
			Temperature: viper.GetFloat64("gemini.temperature"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			ArtifactTTL: viper.GetDuration("cache.artifact_ttl") * time.Second,
		},
		Scraper: ScraperConfig{
			UserAgent: viper.GetString("scraper.user_agent"),
			Timeout:   viper.GetDuration("scraper.timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("db.path", "wikiquiz.db")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.temperature", 0.3)
	viper.SetDefault("cache.artifact_ttl", 3600)
	viper.SetDefault("scraper.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	viper.SetDefault("scraper.timeout", 30)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
}
