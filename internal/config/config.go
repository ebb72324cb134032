package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Redis  RedisConfig
	Quiz   QuizConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

// LLMConfig describes the upstream inference endpoint. Server is the base
// URL up to and including the API version segment, e.g.
// "http://127.0.0.1:1234/v1" for an OpenAI-compatible local server.
type LLMConfig struct {
	Server  string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type QuizConfig struct {
	DefaultMCQCount int
	DefaultTFCount  int
	CacheTTL        time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
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

	viper.SetDefault("server.port", 8001)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 300)
	viper.SetDefault("server.body_limit_mb", 25)
	viper.SetDefault("llm.model", "local-model")
	viper.SetDefault("llm.api_key", "local")
	viper.SetDefault("llm.timeout", 240)
	viper.SetDefault("quiz.default_mcq_count", 20)
	viper.SetDefault("quiz.default_tf_count", 20)
	viper.SetDefault("quiz.cache_ttl", 3600)

	if err := viper.ReadInConfig(); err != nil {
		// Defaults plus environment variables are a complete configuration;
		// only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
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
			BodyLimitMB:  viper.GetInt("server.body_limit_mb"),
		},
		LLM: LLMConfig{
			Server:  viper.GetString("llm.server"),
			Model:   viper.GetString("llm.model"),
			APIKey:  viper.GetString("llm.api_key"),
			Timeout: viper.GetDuration("llm.timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Quiz: QuizConfig{
			DefaultMCQCount: viper.GetInt("quiz.default_mcq_count"),
			DefaultTFCount:  viper.GetInt("quiz.default_tf_count"),
			CacheTTL:        viper.GetDuration("quiz.cache_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.Server = llmServer
	}
	if llmModel := os.Getenv("LLM_MODEL"); llmModel != "" {
		config.LLM.Model = llmModel
	}
	if llmKey := os.Getenv("LLM_API_KEY"); llmKey != "" {
		config.LLM.APIKey = llmKey
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	if config.LLM.Server == "" {
		return nil, fmt.Errorf("llm.server is required (set LLM_SERVER or llm.server in config.yaml)")
	}

	return config, nil
}
