package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig reads a .env file from the given path (if present) and binds
// environment variables into viper. Missing files are not an error.
func LoadConfig(path string) {
	_ = godotenv.Load(filepath.Join(path, ".env"))

	viper.SetConfigFile(filepath.Join(path, ".env"))
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()
	viper.AutomaticEnv()
}
