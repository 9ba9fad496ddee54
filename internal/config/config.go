package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ComeoConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	CampaignDB `yaml:"campaign_db"`
	LogConfig  `yaml:"log_config"`
	PSP        PSPConfig       `yaml:"psp"`
	Kafka      KafkaService    `yaml:"kafka-service"`
	Scheduler  SchedulerConfig `yaml:"scheduler"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CampaignDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

// PSPConfig is injected into the gateway adapter at construction.
// SubmerchantMode selects per-campaign submerchant routing; when false a
// single marketplace merchant key is used for all orders.
type PSPConfig struct {
	APIBaseURL        string `yaml:"api_base_url"`
	APIKey            string `yaml:"api_key" env:"PSP_API_KEY"`
	MerchantID        string `yaml:"merchant_id" env:"PSP_MERCHANT_ID"`
	SubmerchantMode   bool   `yaml:"submerchant_mode"`
	ReturnURLTemplate string `yaml:"return_url_template"`
	Currency          string `yaml:"currency" env-default:"EUR"`
	// AutoConfirm confirms every transaction right after order creation.
	// Testing mode only, never enable in production.
	AutoConfirm bool `yaml:"auto_confirm" env-default:"false"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SchedulerConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"30s"`
}

func MustLoad() *ComeoConfig {

	// Processing env config variable and file
	configPath := os.Getenv("COMEO_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("COMEO_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ComeoConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
