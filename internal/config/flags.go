package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagAssets  = flag.String("assets", "", "Model asset directory")
	flagListen  = flag.String("listen", "", "HTTP listen address")
	flagSamples = flag.Int("camera-samples", -1, "Number of camera poses to sample (0 disables)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAssets != "" {
		cfg.Assets.Dir = *flagAssets
	}
	if *flagListen != "" {
		cfg.Server.Listen = *flagListen
	}
	if *flagSamples >= 0 {
		cfg.Scene.CameraSamples = *flagSamples
	}
}
