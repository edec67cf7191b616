package polaris

import (
	"github.com/caarlos0/env/v11"
)

type settingsEnv struct {
	LogoSource string `env:"POLARIS_LOGO_SOURCE"`
	LogoURL    string `env:"POLARIS_LOGO_URL"`
	LogoAlt    string `env:"POLARIS_LOGO_ALT"`
	LogoWidth  int    `env:"POLARIS_LOGO_WIDTH"`
}

// SettingsFromEnv builds a theme-shaped settings input from POLARIS_*
// environment variables. It returns nil when no relevant variable is
// set, so the result can be passed straight to CreateContext.
func SettingsFromEnv() (*Settings, error) {
	cfg, err := env.ParseAs[settingsEnv]()
	if err != nil {
		return nil, err
	}

	if cfg.LogoSource == "" && cfg.LogoURL == "" {
		return nil, nil
	}

	return &Settings{
		Logo: &Logo{
			Source: cfg.LogoSource,
			URL:    cfg.LogoURL,
			Alt:    cfg.LogoAlt,
			Width:  cfg.LogoWidth,
		},
	}, nil
}
