package config

const (
	defaultDataDir          = "~/.local/share/cutline/projects"
	defaultLogDir           = "~/.local/share/cutline/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultTrackKind        = "video"
	defaultPositionEpsilon  = 1e-9
	defaultRippleEdit       = false
	defaultRippleAllTracks  = false
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Editor: Editor{
			RippleEditDefault: defaultRippleEdit,
			RippleAllTracks:   defaultRippleAllTracks,
			DefaultTrackKind:  defaultTrackKind,
			PositionEpsilon:   defaultPositionEpsilon,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
