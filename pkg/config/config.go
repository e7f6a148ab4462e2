package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Sheets SheetsConfig
	Cache  CacheConfig
	HTTP   HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// SheetsConfig acceso a la planilla remota de Google Sheets.
type SheetsConfig struct {
	CredentialsFile string // Ruta al JSON de la service account
	SpreadsheetURL  string // URL completa de la planilla o su ID a secas
}

// CacheConfig parámetros de la caché de lectura del Store.
type CacheConfig struct {
	TTLSeconds        int // Vigencia de una hoja cacheada
	RetryDelaySeconds int // Espera antes del único reintento de lectura
}

// TTL devuelve la vigencia como duración.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RetryDelay devuelve la espera de reintento como duración.
func (c CacheConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SHEETS_CREDENTIALS_FILE,
// SHEETS_SPREADSHEET_URL, CACHE_TTL_SECONDS, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "controlfin-api"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getString(v, "SHEETS_CREDENTIALS_FILE", "credenciales.json"),
			SpreadsheetURL:  getString(v, "SHEETS_SPREADSHEET_URL", ""),
		},
		Cache: CacheConfig{
			TTLSeconds:        getInt(v, "CACHE_TTL_SECONDS", 60),
			RetryDelaySeconds: getInt(v, "CACHE_RETRY_DELAY_SECONDS", 2),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if cfg.Sheets.SpreadsheetURL == "" {
		return nil, fmt.Errorf("config: SHEETS_SPREADSHEET_URL es obligatoria")
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
