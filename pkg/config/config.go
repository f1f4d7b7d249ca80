package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	BasicAuth BasicAuthConfig
	HTTP      HTTPConfig
	Geo       GeoConfig
	SMTP      SMTPConfig
	Redis     RedisConfig
	Upload    UploadConfig
	Log       LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuración de PostgreSQL.
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

// JWTConfig configuración de JWT para los tokens de administrador.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BasicAuthConfig credenciales del token básico que protege los catálogos de referencia.
type BasicAuthConfig struct {
	Username string
	Password string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GeoConfig configuración de la API de geocodificación de Google.
type GeoConfig struct {
	APIKey     string
	BaseURL    string
	TimeoutSec int
}

// SMTPConfig configuración del envío de correos.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// RedisConfig configuración del caché de catálogos. Addr vacío desactiva el caché.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLMinutes int
}

// UploadConfig destino y límites de las imágenes de ubicaciones.
type UploadConfig struct {
	Dir      string
	MaxFiles int
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:3001",
	"https://v2-stg-parkncharge.sysnetph.com",
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, GOOGLE_GEO_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "evcharge-admin-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "evcharge"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "evcharge-admin"),
		},
		BasicAuth: BasicAuthConfig{
			Username: getString(v, "BASIC_AUTH_USERNAME", ""),
			Password: getString(v, "BASIC_AUTH_PASSWORD", ""),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 4000),
			AllowedOrigins: getList(v, "CORS_ALLOWED_ORIGINS", defaultOrigins),
		},
		Geo: GeoConfig{
			APIKey:     getString(v, "GOOGLE_GEO_API_KEY", ""),
			BaseURL:    getString(v, "GOOGLE_GEO_BASE_URL", "https://maps.googleapis.com"),
			TimeoutSec: getInt(v, "GOOGLE_GEO_TIMEOUT_SECONDS", 10),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "localhost"),
			Port:     getInt(v, "SMTP_PORT", 587),
			Username: getString(v, "SMTP_USERNAME", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "no-reply@parkncharge.com.ph"),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			TTLMinutes: getInt(v, "REFERENCE_CACHE_TTL_MINUTES", 30),
		},
		Upload: UploadConfig{
			Dir:      getString(v, "UPLOAD_DIR", "./public/images"),
			MaxFiles: getInt(v, "UPLOAD_MAX_FILES", 5),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

// getList lee una lista separada por comas.
func getList(v *viper.Viper, key string, def []string) []string {
	raw := getString(v, key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
