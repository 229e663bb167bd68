// Package config loads daemon configuration from hpclaunch_config.json,
// searched for in the working directory, $HOME/.hpclaunch and /etc/hpclaunch,
// falling back to defaults.
package config

import (
	"os"

	"github.com/spf13/viper"
)

var cfg Config
var loaded bool

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("hpclaunch_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.hpclaunch")
	v.AddConfigPath("/etc/hpclaunch")
	return v
}

func setDefaultConfig() *viper.Viper {
	v := getViper()
	home, _ := os.UserHomeDir()
	v.SetDefault("general.database_path", home+"/.hpclaunch/hpclaunch.db")
	v.SetDefault("general.log_dir", home+"/.hpclaunch/logs")
	v.SetDefault("general.debug", false)
	v.SetDefault("grpc.port", 8080)
	v.SetDefault("grpc.ca_cert", "")
	v.SetDefault("grpc.server_cert", "")
	v.SetDefault("grpc.server_key", "")
	v.SetDefault("batch.sbatch_path", "sbatch")
	v.SetDefault("batch.scancel_path", "scancel")
	v.SetDefault("batch.bash_path", "/bin/bash")
	return v
}

func LoadConfig() {
	v := setDefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		// no config file is fine, defaults apply
		v = setDefaultConfig()
	}
	if err := v.Unmarshal(&cfg); err != nil {
		setDefaultConfig().Unmarshal(&cfg)
	}
	loaded = true
}

func GetConfig() *Config {
	if !loaded {
		LoadConfig()
	}
	return &cfg
}
