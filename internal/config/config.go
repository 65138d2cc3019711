package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	PoolStats PoolStats `mapstructure:",squash"`
	Loader    Loader    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Database reúne os parâmetros de conexão com o PostgreSQL. Os nomes das
// variáveis seguem os da imagem oficial do postgres (POSTGRES_DB, POSTGRES_USER...).
type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Host            string        `mapstructure:"db_host"`
	Port            string        `mapstructure:"db_port"`
	Name            string        `mapstructure:"postgres_db"`
	User            string        `mapstructure:"postgres_user"`
	Password        string        `mapstructure:"postgres_password"`
	SSLMode         string        `mapstructure:"db_sslmode"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"db_auto_migrate"`
}

type Dashboard struct {
	Host       string        `mapstructure:"dashboard_host"`
	Port       string        `mapstructure:"dashboard_port"`
	APIBaseURL string        `mapstructure:"api_base_url"`
	APITimeout time.Duration `mapstructure:"api_timeout"`
}

type PoolStats struct {
	CronSchedule string `mapstructure:"pool_stats_cron"`
	Enabled      bool   `mapstructure:"pool_stats_enabled"`
}

type Loader struct {
	CSVPath   string `mapstructure:"loader_csv_path"`
	Encoding  string `mapstructure:"loader_encoding"`
	BatchSize int    `mapstructure:"loader_batch_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("POSTGRES_DB", "salesdb")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "admin") // ONLY LOCAL
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DB_AUTO_MIGRATE", true)

	viper.SetDefault("DASHBOARD_HOST", "0.0.0.0")
	viper.SetDefault("DASHBOARD_PORT", "8501")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("API_TIMEOUT", "30s")

	viper.SetDefault("POOL_STATS_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("POOL_STATS_ENABLED", false)

	viper.SetDefault("LOADER_CSV_PATH", "data/sales_data.csv")
	viper.SetDefault("LOADER_ENCODING", "cp1252")
	viper.SetDefault("LOADER_BATCH_SIZE", 500)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

// BuildDSN monta a URL de conexão escapando usuário e senha.
func (d Database) BuildDSN() string {
	dsn := url.URL{
		Scheme: d.Driver,
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%s", d.Host, d.Port),
		Path:   "/" + d.Name,
	}

	if d.SSLMode != "" {
		query := dsn.Query()
		query.Set("sslmode", d.SSLMode)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String()
}

// Address retorna o endereço de escuta da API.
func (s Server) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Address retorna o endereço de escuta do dashboard.
func (d Dashboard) Address() string {
	return fmt.Sprintf("%s:%s", d.Host, d.Port)
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
