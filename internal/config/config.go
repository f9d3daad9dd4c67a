package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	Import               Import               `mapstructure:",squash"`
	DateWindow           DateWindow           `mapstructure:",squash"`
	Projection           Projection           `mapstructure:",squash"`
	Cache                Cache                `mapstructure:",squash"`
	ImportHistoryCleanup ImportHistoryCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

// Auth valida tokens emitidos pelo provedor de identidade externo
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	Issuer string `mapstructure:"auth_issuer"`
}

type Import struct {
	MaxFileSizeMB    int  `mapstructure:"import_max_file_size_mb"`
	InsertChunkSize  int  `mapstructure:"import_insert_chunk"`
	RejectDuplicates bool `mapstructure:"import_reject_duplicates"`
}

type DateWindow struct {
	MinYear int `mapstructure:"date_window_min_year"`
	MaxYear int `mapstructure:"date_window_max_year"`
}

// Projection são os multiplicadores usados nos valores previstos do orçamento
type Projection struct {
	RevenueFactor float64 `mapstructure:"projection_revenue_factor"`
	ExpenseFactor float64 `mapstructure:"projection_expense_factor"`
}

type Cache struct {
	TTL             time.Duration `mapstructure:"cache_ttl"`
	CleanupInterval time.Duration `mapstructure:"cache_cleanup_interval"`
}

type ImportHistoryCleanup struct {
	CronSchedule  string `mapstructure:"import_history_cleanup_cron"`
	RetentionDays int    `mapstructure:"import_history_cleanup_retention_days"`
	Enabled       bool   `mapstructure:"import_history_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ISSUER", "")

	viper.SetDefault("IMPORT_MAX_FILE_SIZE_MB", 20)
	viper.SetDefault("IMPORT_INSERT_CHUNK", 500)
	viper.SetDefault("IMPORT_REJECT_DUPLICATES", false)

	viper.SetDefault("DATE_WINDOW_MIN_YEAR", 2020)
	viper.SetDefault("DATE_WINDOW_MAX_YEAR", 2030)

	viper.SetDefault("PROJECTION_REVENUE_FACTOR", 1.1)
	viper.SetDefault("PROJECTION_EXPENSE_FACTOR", 0.9)

	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_CLEANUP_INTERVAL", "10m")

	viper.SetDefault("IMPORT_HISTORY_CLEANUP_CRON", "0 2 * * *")   // Todos os dias às 2h da manhã
	viper.SetDefault("IMPORT_HISTORY_CLEANUP_RETENTION_DAYS", 30) // Importações com erro ficam 30 dias
	viper.SetDefault("IMPORT_HISTORY_CLEANUP_ENABLED", false)

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

	if err := config.Validate(); err != nil {
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

// Validate confere combinações que o viper não consegue verificar sozinho
func (c *Config) Validate() error {
	if c.DateWindow.MinYear > c.DateWindow.MaxYear {
		return fmt.Errorf("config: DATE_WINDOW_MIN_YEAR (%d) maior que DATE_WINDOW_MAX_YEAR (%d)",
			c.DateWindow.MinYear, c.DateWindow.MaxYear)
	}
	if c.Projection.RevenueFactor < 0 || c.Projection.ExpenseFactor < 0 {
		return fmt.Errorf("config: fatores de projeção não podem ser negativos")
	}
	if c.Import.MaxFileSizeMB <= 0 {
		return fmt.Errorf("config: IMPORT_MAX_FILE_SIZE_MB deve ser positivo")
	}
	if c.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET vazio: nenhum token será aceito")
	}
	return nil
}

// MaxFileSizeBytes é o limite de upload por arquivo
func (i Import) MaxFileSizeBytes() int64 {
	return int64(i.MaxFileSizeMB) << 20
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
