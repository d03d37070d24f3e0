package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	AI       AIConfig       `mapstructure:"ai"`
	Farm     FarmConfig     `mapstructure:"farm"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig: DSN vacío => repositorios en memoria.
type DatabaseConfig struct {
	DSN            string `mapstructure:"dsn"`
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

// RedisConfig: Addr vacío => change feed en memoria.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

const (
	AuthModeDev    = "dev"
	AuthModeJWT    = "jwt"
	AuthModeRemote = "remote"
)

type AuthConfig struct {
	Mode            string   `mapstructure:"mode"`
	JWTSecret       string   `mapstructure:"jwt_secret"`
	JWTIssuer       string   `mapstructure:"jwt_issuer"`
	RemoteURL       string   `mapstructure:"remote_url"`
	RemoteAPIKey    string   `mapstructure:"remote_api_key"`
	AdminAccountIDs []string `mapstructure:"admin_account_ids"`
}

type AIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type FarmConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load lee .env (si existe), el archivo opcional path y luego el entorno:
// server.port <- SERVER_PORT, auth.admin_account_ids <- AUTH_ADMIN_ACCOUNT_IDS ("a,b").
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Auth.AdminAccountIDs = splitList(cfg.Auth.AdminAccountIDs)
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "cattle-farm-manager")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.connect_retries", 5)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "cattle-farm:changes:")

	v.SetDefault("auth.mode", AuthModeDev)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_issuer", "")
	v.SetDefault("auth.remote_url", "")
	v.SetDefault("auth.remote_api_key", "")
	v.SetDefault("auth.admin_account_ids", []string{})

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gemini-2.0-flash")

	v.SetDefault("farm.timezone", "America/Caracas")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Validate revisa combinaciones que no tienen sentido antes de arrancar.
func (c *Config) Validate() error {
	switch c.Auth.Mode {
	case AuthModeDev:
	case AuthModeJWT:
		if strings.TrimSpace(c.Auth.JWTSecret) == "" {
			return errors.New("auth.jwt_secret is required when auth.mode=jwt")
		}
	case AuthModeRemote:
		if strings.TrimSpace(c.Auth.RemoteURL) == "" || strings.TrimSpace(c.Auth.RemoteAPIKey) == "" {
			return errors.New("auth.remote_url and auth.remote_api_key are required when auth.mode=remote")
		}
	default:
		return fmt.Errorf("unknown auth.mode %q", c.Auth.Mode)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location devuelve el huso horario de la finca; las fechas de rotación se cuentan en él.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Farm.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid farm.timezone %q: %w", tz, err)
	}
	return loc, nil
}

// splitList normaliza listas que llegan como "a, b" desde el entorno.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
