package main

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"

	bosherr "github.com/omnihash/omnihash/errors"
)

// Config holds defaults merged under the CLI flags. It lives at
// ~/.omnihash.yml and is optional.
type Config struct {
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	Checksums bool     `yaml:"checksums"`
	JSON      bool     `yaml:"json"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".omnihash.yml")
}

func loadConfig(path string) (Config, error) {
	var config Config

	if path == "" {
		return config, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, bosherr.WrapErrorf(err, "Reading config file '%s'", path)
	}

	err = yaml.Unmarshal(contents, &config)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Parsing config file '%s'", path)
	}

	return config, nil
}

// mergeOptions layers CLI flags on top of the config file defaults.
func mergeOptions(opts Options, config Config) Options {
	opts.Includes = append(append([]string{}, config.Includes...), opts.Includes...)
	opts.Excludes = append(append([]string{}, config.Excludes...), opts.Excludes...)
	opts.Checksums = opts.Checksums || config.Checksums
	opts.JSON = opts.JSON || config.JSON

	return opts
}
