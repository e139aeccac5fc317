package config

import (
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

const defaultConfigPath = "./cmd/config/config.yml"

// DatasetConfig описывает источник справочных данных по фитингам.
// source: csv | postgres
type DatasetConfig struct {
	Source       string `yaml:"source" env:"DATASET_SOURCE" env-default:"csv"`
	CSVPath      string `yaml:"csv_path" env:"DATASET_CSV_PATH" env-default:"./data/fittings.csv"`
	CSVSeparator string `yaml:"csv_separator" env-default:";"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env-default:"postgres"`
	Source string `yaml:"source" env:"DB_SOURCE"`
}

type CalculationConfig struct {
	Workers       int    `yaml:"workers" env:"CALC_WORKERS" env-default:"8"`
	MaxBatchSize  int    `yaml:"max_batch_size" env-default:"500"`
	DefaultLocale string `yaml:"default_locale" env:"DEFAULT_LOCALE" env-default:"de"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second" env-default:"50"`
	Burst             int `yaml:"burst" env-default:"100"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

type Config struct {
	IsDebug *bool `yaml:"is_debug" env-required:"true"`
	Listen  struct {
		Type   string `yaml:"type" env-default:"port"`
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"8080"`
	} `yaml:"listen"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Dataset     DatasetConfig     `yaml:"dataset"`
	Database    DatabaseConfig    `yaml:"database"`
	Calculation CalculationConfig `yaml:"calculation"`
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("read application configuration")
		instance = &Config{}
		if err := cleanenv.ReadConfig(configPath(), instance); err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Info(help)
			logger.Fatal(err)
		}
	})

	return instance
}

// Load читает конфигурацию из указанного файла без кеширования (CLI, тесты).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}
