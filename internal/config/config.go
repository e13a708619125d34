package config

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	DataGo     ClientConfig `yaml:"datago" mapstructure:"datago"`
	FoodSafety ClientConfig `yaml:"foodsafety" mapstructure:"foodsafety"`
	Search     SearchConfig `yaml:"search" mapstructure:"search"`
	Server     ServerConfig `yaml:"server" mapstructure:"server"`
	Log        LogConfig    `yaml:"log" mapstructure:"log"`
}

// ClientConfig configures one upstream API client. An empty key leaves
// that upstream unconfigured; the engine then skips its tiers.
type ClientConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// SearchConfig configures the engine.
type SearchConfig struct {
	// TuningFile points at an optional YAML file overriding the catalog
	// and history window sizes.
	TuningFile string `yaml:"tuning_file" mapstructure:"tuning_file"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port      int    `yaml:"port" mapstructure:"port"`
	StaticDir string `yaml:"static_dir" mapstructure:"static_dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FOODSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The portals issue credentials under their own env names; keep those
	// working alongside the prefixed forms.
	_ = v.BindEnv("datago.key", "FOODSEARCH_DATAGO_KEY", "PUBLIC_DATA_API_KEY")
	_ = v.BindEnv("foodsafety.key", "FOODSEARCH_FOODSAFETY_KEY", "PUBLIC_DATA_API_KEY_2", "FOOD_SAFETY_API_KEY")

	// Defaults
	v.SetDefault("datago.base_url", "")
	v.SetDefault("datago.timeout_secs", 5)
	v.SetDefault("datago.rate_limit", 10.0)
	v.SetDefault("foodsafety.base_url", "")
	v.SetDefault("foodsafety.timeout_secs", 5)
	v.SetDefault("foodsafety.rate_limit", 10.0)
	v.SetDefault("search.tuning_file", "")
	v.SetDefault("server.port", 1411)
	v.SetDefault("server.static_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	cfg.DataGo.Key = DecodeKey(cfg.DataGo.Key)
	cfg.FoodSafety.Key = DecodeKey(cfg.FoodSafety.Key)

	return &cfg, nil
}

// DecodeKey reverses one round of URL encoding on a credential. The data
// portals issue keys in percent-encoded form; a key configured that way
// would otherwise be encoded a second time inside request URLs. A key
// without a '%' passes through untouched, as does one that fails to
// decode. PathUnescape, not QueryUnescape: a literal '+' in a key must
// survive.
func DecodeKey(key string) string {
	if !strings.Contains(key, "%") {
		return key
	}
	decoded, err := url.PathUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
