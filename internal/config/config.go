package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	Gemini         Gemini         `mapstructure:",squash"`
	InsightRefresh InsightRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Currency string `mapstructure:"currency"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Storage struct {
	Driver string `mapstructure:"storage_driver"`
	Path   string `mapstructure:"storage_path"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type InsightRefresh struct {
	CronSchedule string `mapstructure:"insight_refresh_cron"`
	Enabled      bool   `mapstructure:"insight_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CURRENCY", "INR")

	viper.SetDefault("STORAGE_DRIVER", StorageDriverFile)
	viper.SetDefault("STORAGE_PATH", "./data/products.json")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")

	viper.SetDefault("INSIGHT_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("INSIGHT_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	// AutomaticEnv só resolve chaves conhecidas, por isso cada chave é registrada via default
	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))
	config.App.Currency = strings.ToUpper(strings.TrimSpace(config.App.Currency))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as combinações de configuração que impedem a aplicação de subir
func (c *Config) Validate() error {
	var errs []string

	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverSQLite:
	default:
		errs = append(errs, fmt.Sprintf("driver de armazenamento inválido '%s': use '%s' ou '%s'",
			c.Storage.Driver, StorageDriverFile, StorageDriverSQLite))
	}

	if c.Storage.Path == "" {
		errs = append(errs, "caminho de armazenamento (STORAGE_PATH) não pode ser vazio")
	}

	if c.InsightRefresh.Enabled && c.InsightRefresh.CronSchedule == "" {
		errs = append(errs, "INSIGHT_REFRESH_CRON é obrigatório quando a atualização de insights está habilitada")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuração inválida:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// HasGemini indica se há chave configurada para gerar insights
func (c *Config) HasGemini() bool {
	return c.Gemini.APIKey != ""
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
