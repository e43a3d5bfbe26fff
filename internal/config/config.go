// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config — настройки процесса: параметры swap-клиента плюс логирование.
type Config struct {
	PriceImpactMax float64 `mapstructure:"price_impact_max"`
	SlippageBps    int     `mapstructure:"slippage_bps"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	QuoteURL       string  `mapstructure:"quote_url"`
	TxURL          string  `mapstructure:"tx_url"`
	DataBaseURL    string  `mapstructure:"data_base_url"`
	LogFile        string  `mapstructure:"log_file"`
	DebugLogging   bool    `mapstructure:"debug_logging"`
}

const (
	DefaultPriceImpactMax = 0.1
	DefaultSlippageBps    = 10
	DefaultTimeoutSeconds = 10
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"price_impact_max": DefaultPriceImpactMax,
		"slippage_bps":     DefaultSlippageBps,
		"timeout_seconds":  DefaultTimeoutSeconds,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	loadEnvironmentVariables(v, &cfg)

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.PriceImpactMax <= 0 || cfg.PriceImpactMax > 1 {
		return errors.New("price_impact_max must be a fraction in (0, 1]")
	}
	if cfg.SlippageBps <= 0 || cfg.SlippageBps > 10000 {
		return errors.New("invalid slippage_bps")
	}
	if cfg.TimeoutSeconds <= 0 {
		return errors.New("invalid timeout_seconds")
	}
	for _, endpoint := range []string{cfg.QuoteURL, cfg.TxURL, cfg.DataBaseURL} {
		if endpoint == "" {
			continue
		}
		if err := validateURL(endpoint); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, "http") {
		return errors.New("invalid URL protocol")
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) {
	v.AutomaticEnv()
	v.SetEnvPrefix("RAYDIUM_SWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if quoteURL := v.GetString("QUOTE_URL"); quoteURL != "" {
		cfg.QuoteURL = quoteURL
	}
	if txURL := v.GetString("TX_URL"); txURL != "" {
		cfg.TxURL = txURL
	}
	if dataURL := v.GetString("DATA_BASE_URL"); dataURL != "" {
		cfg.DataBaseURL = dataURL
	}
}
