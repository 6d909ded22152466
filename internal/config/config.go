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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Sources     Sources     `mapstructure:",squash"`
	Output      Output      `mapstructure:",squash"`
	KPI         KPI         `mapstructure:",squash"`
	RefreshSync RefreshSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Host     string `mapstructure:"database_host"`
	Port     string `mapstructure:"database_port"`
	Name     string `mapstructure:"database_name"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	Socket   string `mapstructure:"database_socket"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Sources struct {
	CustomersCSVPath string `mapstructure:"customers_csv_path"`
	OrdersXMLPath    string `mapstructure:"orders_xml_path"`
}

type Output struct {
	Dir string `mapstructure:"output_dir"`
}

type KPI struct {
	TopSpendersWindowDays int `mapstructure:"top_spenders_window_days"`
	TopSpendersLimit      int `mapstructure:"top_spenders_limit"`
}

type RefreshSync struct {
	CronSchedule string `mapstructure:"refresh_sync_cron"`
	Enabled      bool   `mapstructure:"refresh_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_NAME", "order_analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SOCKET", "")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("CUSTOMERS_CSV_PATH", "data/customers.csv")
	viper.SetDefault("ORDERS_XML_PATH", "data/orders.xml")
	viper.SetDefault("OUTPUT_DIR", "outputs")

	viper.SetDefault("TOP_SPENDERS_WINDOW_DAYS", 30)
	viper.SetDefault("TOP_SPENDERS_LIMIT", 10)

	viper.SetDefault("REFRESH_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REFRESH_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// Validate verifica as configurações obrigatórias antes de tocar nas fontes
// de dados. Uma configuração incompleta aborta a execução inteira.
func (c *Config) Validate() error {
	if c.Database.Host == "" && c.Database.Socket == "" {
		return fmt.Errorf("configuração inválida: DATABASE_HOST ou DATABASE_SOCKET é obrigatório")
	}
	if c.Database.User == "" {
		return fmt.Errorf("configuração inválida: DATABASE_USER é obrigatório")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("configuração inválida: DATABASE_NAME é obrigatório")
	}
	if c.Sources.CustomersCSVPath == "" {
		return fmt.Errorf("configuração inválida: CUSTOMERS_CSV_PATH é obrigatório")
	}
	if c.Sources.OrdersXMLPath == "" {
		return fmt.Errorf("configuração inválida: ORDERS_XML_PATH é obrigatório")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("configuração inválida: OUTPUT_DIR é obrigatório")
	}
	if c.KPI.TopSpendersWindowDays <= 0 || c.KPI.TopSpendersLimit <= 0 {
		return fmt.Errorf("configuração inválida: janela e limite de top spenders devem ser positivos")
	}
	return nil
}

// buildDSN monta a string de conexão. Quando um socket local é informado,
// ele substitui host e porta (útil para autenticação via socket UNIX).
func buildDSN(db Database) string {
	if db.Socket != "" {
		return fmt.Sprintf(
			"%s://%s:%s@/%s?host=%s&sslmode=%s",
			db.Driver, db.User, db.Password, db.Name, db.Socket, db.SSLMode,
		)
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s:%s/%s?sslmode=%s",
		db.Driver, db.User, db.Password, db.Host, db.Port, db.Name, db.SSLMode,
	)
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
