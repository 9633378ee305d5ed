package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Drivers de almacenamiento del documento.
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	DB      DBConfig
	AI      AIConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// StoreConfig dónde vive el documento completo.
type StoreConfig struct {
	Driver     string // file | sqlite | postgres
	DataFile   string // ruta del JSON (driver file)
	SQLitePath string // ruta de la base (driver sqlite)
}

// DBConfig configuración de PostgreSQL (driver postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AIConfig proveedor de sugerencia de margen.
type AIConfig struct {
	Provider        string // anthropic | gemini
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	TimeoutSeconds  int
}

// MetricsConfig exposición de /metrics.
type MetricsConfig struct {
	Enabled bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee .env al entorno del proceso (sin pisar variables existentes), luego un config.yaml
// opcional y por último las variables de entorno, que tienen prioridad.
func Load() (*Config, error) {
	_ = gotenv.Load(".env") // ignoramos error si no existe

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("leer config.yaml: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fiyatvizyon"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getString(v, "STORE_DRIVER", StoreFile)),
			DataFile:   getString(v, "STORE_DATA_FILE", "data/app-data.json"),
			SQLitePath: getString(v, "STORE_SQLITE_PATH", "data/fiyatvizyon.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "fiyatvizyon"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "anthropic")),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			TimeoutSeconds:  getInt(v, "AI_TIMEOUT_SECONDS", 10),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
	}
}

// Validate rechaza driver desconocido o puerto fuera de rango.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreFile, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("STORE_DRIVER %q no soportado (file, sqlite, postgres)", c.Store.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d fuera de rango", c.HTTP.Port)
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 10
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
