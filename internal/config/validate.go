package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	for _, field := range []struct {
		key   string
		value string
	}{
		{"tools.mount_table", c.Tools.MountTable},
		{"tools.unmount", c.Tools.Unmount},
		{"tools.eject", c.Tools.Eject},
		{"tools.imager", c.Tools.Imager},
		{"tools.device_marker", c.Tools.DeviceMarker},
	} {
		if field.value == "" {
			return fmt.Errorf("%s must be set", field.key)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
