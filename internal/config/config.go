package config

import (
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Data DataConfig
	Auth AuthConfig
}

type DataConfig struct {
	// Dir is the directory holding the snapshot files.
	Dir           string
	ProductsFile  string
	SuppliersFile string
	UsersFile     string
}

type AuthConfig struct {
	SessionSecret string
	SessionExpiry int // in minutes
	LoginPerMin   int
	LoginBurst    int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("DATA_DIR", ".")
	viper.SetDefault("PRODUCTS_FILE", "products.json")
	viper.SetDefault("SUPPLIERS_FILE", "suppliers.json")
	viper.SetDefault("USERS_FILE", "users.json")
	viper.SetDefault("SESSION_SECRET", "change-me")
	viper.SetDefault("SESSION_EXPIRY", 15)
	viper.SetDefault("LOGIN_PER_MIN", 60)
	viper.SetDefault("LOGIN_BURST", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Data: DataConfig{
			Dir:           viper.GetString("DATA_DIR"),
			ProductsFile:  viper.GetString("PRODUCTS_FILE"),
			SuppliersFile: viper.GetString("SUPPLIERS_FILE"),
			UsersFile:     viper.GetString("USERS_FILE"),
		},
		Auth: AuthConfig{
			SessionSecret: viper.GetString("SESSION_SECRET"),
			SessionExpiry: viper.GetInt("SESSION_EXPIRY"),
			LoginPerMin:   viper.GetInt("LOGIN_PER_MIN"),
			LoginBurst:    viper.GetInt("LOGIN_BURST"),
		},
	}
}

// ProductsPath returns the full path of the product store.
func (c *Config) ProductsPath() string {
	return filepath.Join(c.Data.Dir, c.Data.ProductsFile)
}

// SuppliersPath returns the full path of the supplier store.
func (c *Config) SuppliersPath() string {
	return filepath.Join(c.Data.Dir, c.Data.SuppliersFile)
}

// UsersPath returns the full path of the credential store.
func (c *Config) UsersPath() string {
	return filepath.Join(c.Data.Dir, c.Data.UsersFile)
}

// SessionTTL returns the session expiry as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Auth.SessionExpiry) * time.Minute
}
