package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	EscrowDB      `yaml:"escrow_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	OpenAIService `yaml:"openai-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	ContractTopic string `yaml:"contract_topic" env-default:"contract-events"`
	EscrowTopic   string `yaml:"escrow_topic" env-default:"escrow-events"`
}

type OpenAIService struct {
	Model       string  `yaml:"model" env-default:"gpt-4.1-nano"`
	Temperature float32 `yaml:"temperature" env-default:"0.7"`
	MaxTokens   int     `yaml:"max_tokens" env-default:"500"`
	APIKey      string  `env:"OPENAI_API_KEY"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
