package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/motorlot/motorlot_media/internal/photos"
	"github.com/spf13/viper"
)

type Config struct {
	Photos photos.Config `mapstructure:"photos"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile("files/config.yaml")

	viper.SetDefault("photos.maxUploadBytes", 20<<20)
	viper.SetDefault("photos.minUploadBytes", 100)
	viper.SetDefault("photos.allowedExtensions", []string{"jpg", "jpeg", "png", "webp", "heic", "heif"})
	viper.SetDefault("photos.storage.localStorageRootDir", "files/media")

	// Registered empty so AutomaticEnv can fill them during Unmarshal.
	viper.SetDefault("photos.storage.objectStoreAccountId", "")
	viper.SetDefault("photos.storage.objectStoreAccessKeyId", "")
	viper.SetDefault("photos.storage.objectStoreSecretKey", "")
	viper.SetDefault("photos.storage.objectStoreBucket", "")
	viper.SetDefault("photos.storage.objectStorePublicUrlBase", "")

	// Credentials come from the environment in deployments, e.g.
	// MOTORLOT_PHOTOS_STORAGE_OBJECTSTOREACCESSKEYID.
	viper.SetEnvPrefix("motorlot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine: defaults plus environment cover the
	// filesystem-backend case entirely.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}
