package validator

import (
	"github.com/pkg/errors"
)

// SeveritySetting configures how a rule's findings are reported. The zero
// value is Warning.
type SeveritySetting int

const (
	SettingWarning SeveritySetting = iota
	SettingError
	SettingIgnore
)

func (s SeveritySetting) String() string {
	switch s {
	case SettingWarning:
		return "warning"
	case SettingError:
		return "error"
	case SettingIgnore:
		return "ignore"
	}
	return "unknown"
}

// ParseSeveritySetting converts a configuration string into a setting.
func ParseSeveritySetting(value string) (SeveritySetting, error) {
	switch value {
	case "warning":
		return SettingWarning, nil
	case "error":
		return SettingError, nil
	case "ignore":
		return SettingIgnore, nil
	}
	return SettingWarning, errors.Errorf("invalid severity %q, must be ignore, warning, or error", value)
}

// Settings configure a Validator. Fixed for the lifetime of the instance.
type Settings struct {
	// DeprecatedMaintainer controls the MAINTAINER deprecation
	// diagnostic. Ignore suppresses it entirely.
	DeprecatedMaintainer SeveritySetting
}
