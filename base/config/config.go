package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFile = "infra/configs/config.yaml"
	EnvPrefix   = "AUCTION"
)

// Load reads the yaml file named by --config into viper. Keys can be
// overridden from the environment, `mongo.uri` as AUCTION_MONGO_URI.
func Load(name string, args []string) error {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", DefaultFile, "path of the yaml config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := viper.BindPFlags(fs); err != nil {
		return err
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return viper.ReadInConfig()
}
