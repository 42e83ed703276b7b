package config

const (
	defaultLogDir       = "~/.local/share/isorip/logs"
	defaultMountTable   = "df"
	defaultUnmount      = "diskutil"
	defaultEject        = "drutil"
	defaultImager       = "ddrescue"
	defaultDeviceMarker = "/dev/disk"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultConfigPath   = "~/.config/isorip/config.toml"
	projectConfigName   = "isorip.toml"
	logFileName         = "isorip.log"
	runLockFileName     = "isorip.lock"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Tools: Tools{
			MountTable:   defaultMountTable,
			Unmount:      defaultUnmount,
			Eject:        defaultEject,
			Imager:       defaultImager,
			DeviceMarker: defaultDeviceMarker,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
