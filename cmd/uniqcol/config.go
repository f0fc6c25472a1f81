package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. UNIQCOL_OUTPUT.
const envPrefix = "uniqcol"

type config struct {
	Output  string
	Verbose bool
}

// loadConfig merges flags with environment variables. A flag set on the
// command line wins over the environment, which wins over flag defaults.
func loadConfig(flags *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return config{}, err
	}

	return config{
		Output:  v.GetString("output"),
		Verbose: v.GetBool("verbose"),
	}, nil
}
