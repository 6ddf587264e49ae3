package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the note blob lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves storage settings from an .ideapops config file and
// IDEAPOPS_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ideapops.db")
	viper.SetConfigName(".ideapops") // .yaml is implicit
	viper.SetEnvPrefix("IDEAPOPS")
	viper.AutomaticEnv()

	if override := os.Getenv("IDEAPOPS_CONFIG_PATH"); override != "" {
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
