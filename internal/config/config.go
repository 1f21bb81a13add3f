package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	ReconciliationAudit ReconciliationAudit `mapstructure:",squash"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level" validate:"required"`
	LogFormat     string `mapstructure:"log_format" validate:"oneof=text json"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb" validate:"gte=0"`
	LogMaxBackups int    `mapstructure:"log_max_backups" validate:"gte=0"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days" validate:"gte=0"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver" validate:"required"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url" validate:"required"`
	User         string `mapstructure:"database_user" validate:"required"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns" validate:"gte=0"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret" validate:"required,min=16"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// ReconciliationAudit configura o job que reconcilia receita bruta e reembolsos periodicamente
type ReconciliationAudit struct {
	CronSchedule    string  `mapstructure:"reconciliation_audit_cron" validate:"required_if=Enabled true"`
	Enabled         bool    `mapstructure:"reconciliation_audit_enabled"`
	LookbackDays    int     `mapstructure:"reconciliation_audit_lookback_days" validate:"gte=1"`
	StoreIDs        []int64 `mapstructure:"reconciliation_audit_store_ids" validate:"required_if=Enabled true"`
	Currency        string  `mapstructure:"reconciliation_audit_currency" validate:"omitempty,len=3"`
	PrincipalUserID int     `mapstructure:"reconciliation_audit_principal_user_id" validate:"required_if=Enabled true"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ticketing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "troque_este_segredo_local") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("RECONCILIATION_AUDIT_CRON", "30 2 * * *") // Todos os dias às 2h30
	viper.SetDefault("RECONCILIATION_AUDIT_ENABLED", false)
	viper.SetDefault("RECONCILIATION_AUDIT_LOOKBACK_DAYS", 7)
	viper.SetDefault("RECONCILIATION_AUDIT_STORE_IDS", "")
	viper.SetDefault("RECONCILIATION_AUDIT_CURRENCY", "USD")
	viper.SetDefault("RECONCILIATION_AUDIT_PRINCIPAL_USER_ID", 0)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 30)
}

func NewConfig() (*Config, error) {
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

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate aplica as regras declaradas nas tags `validate`
func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
