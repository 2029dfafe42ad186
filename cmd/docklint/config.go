package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/docklint/docklint/validator"
)

type config struct {
	Rules rulesConfig `toml:"rules"`
}

type rulesConfig struct {
	// DeprecatedMaintainer is ignore, warning, or error.
	DeprecatedMaintainer string `toml:"deprecated-maintainer"`
}

func loadConfigFile(fp string) (config, error) {
	var c config
	if _, err := toml.DecodeFile(fp, &c); err != nil {
		if os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, errors.Wrapf(err, "failed to load config from %s", fp)
	}
	return c, nil
}

func (c config) settings() (validator.Settings, error) {
	var s validator.Settings
	if c.Rules.DeprecatedMaintainer != "" {
		sev, err := validator.ParseSeveritySetting(c.Rules.DeprecatedMaintainer)
		if err != nil {
			return s, errors.Wrap(err, "invalid rules.deprecated-maintainer")
		}
		s.DeprecatedMaintainer = sev
	}
	return s, nil
}
