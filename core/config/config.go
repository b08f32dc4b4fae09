package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"lab-launcher/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment key read by the launcher.
const EnvPrefix = "LAUNCHER"

// AppDir is the launcher's directory under the user configuration directory.
const AppDir = "lab-launcher"

// Config holds the ambient configuration of the launcher.
// The listening port is intentionally absent: it is a constant of the server package.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// Dir returns the directory holding the launcher's optional .env file.
// It is never the serving root, so the file is not reachable over HTTP.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, AppDir), nil
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
// An empty path skips the .env file.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		// Ignore error if file doesn't exist
		_ = godotenv.Overload(filepath.Join(path, ".env"))
	}

	v := viper.New()

	bindValues(v, Config{}, "")

	// LAUNCHER_LOG_LEVEL -> log.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers the 'default' tag of every
// 'mapstructure' field with Viper.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
