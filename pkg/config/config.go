package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Stock StockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// StockConfig reglas de stock y persistencia del inventario.
type StockConfig struct {
	// CSVPath ruta por defecto para exportar/importar el inventario.
	CSVPath string
	// Strict true rechaza ajustes que dejarían la cantidad negativa
	// (ErrInsufficientStock); false conserva el comportamiento permisivo
	// original donde el stock puede quedar bajo cero.
	Strict bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, INVENTORY_CSV_PATH, STOCK_STRICT.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-cli"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Stock: StockConfig{
			CSVPath: getString(v, "INVENTORY_CSV_PATH", "inventario.csv"),
			Strict:  getBool(v, "STOCK_STRICT", false),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		case string:
			b, err := strconv.ParseBool(v.GetString(key))
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
