package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the database location: an .omni config file in the
// working directory, OMNI_* environment overrides, or the default
// ~/.omni.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.omni.db")
	viper.SetConfigName(".omni") // .yaml is implicit
	viper.SetEnvPrefix("OMNI")
	viper.AutomaticEnv()

	if override := os.Getenv("OMNI_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
