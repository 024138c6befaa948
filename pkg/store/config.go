package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath = "~/.moodsync.db"

	// defaultQuota mirrors the usual browser localStorage budget.
	defaultQuota = 5 * 1024 * 1024
)

type Config interface {
	BasePath() string
	Quota() int64
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("quota", defaultQuota)
	viper.SetConfigName(".moodsync") // .yaml is implicit
	viper.SetEnvPrefix("MOODSYNC")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODSYNC_CONFIG_PATH"); override != "" {
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

	return &fileConfig{Path: path, Max: viper.GetInt64("quota")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Max  int64  `json:"quota"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Quota() int64 {
	return f.Max
}
