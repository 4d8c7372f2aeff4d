package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Import          Import          `mapstructure:",squash"`
	ImportRetention ImportRetention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Import agrupa os parâmetros do pipeline de ingestão de arquivos
type Import struct {
	MaxUploadSizeMB        int `mapstructure:"import_max_upload_size_mb"`
	ExecutionBudgetSeconds int `mapstructure:"import_execution_budget_seconds"`
	ListLimit              int `mapstructure:"import_list_limit"`
}

// ImportRetention agrupa os parâmetros da cron de limpeza do ledger
type ImportRetention struct {
	CronSchedule      string `mapstructure:"import_retention_cron"`
	Enabled           bool   `mapstructure:"import_retention_enabled"`
	RetentionDays     int    `mapstructure:"import_retention_days"`
	StaleAfterMinutes int    `mapstructure:"import_retention_stale_after_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_import")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do pipeline de importação
	viper.SetDefault("IMPORT_MAX_UPLOAD_SIZE_MB", 50)        // Limite do upload direto; acima disso, importar por caminho
	viper.SetDefault("IMPORT_EXECUTION_BUDGET_SECONDS", 540) // Orçamento de relógio de parede por invocação
	viper.SetDefault("IMPORT_LIST_LIMIT", 20)                // Entradas recentes do ledger por listagem

	// Defaults da cron de retenção do ledger
	viper.SetDefault("IMPORT_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("IMPORT_RETENTION_ENABLED", false)
	viper.SetDefault("IMPORT_RETENTION_DAYS", 90)
	viper.SetDefault("IMPORT_RETENTION_STALE_AFTER_MINUTES", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
