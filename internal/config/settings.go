package config

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Settings keys
const (
	KeyMaxUploadBytes   = "max_upload_bytes"
	KeyHealthPort       = "health_port"
	KeyFetchTimeout     = "fetch_timeout"
	KeyTranscodeTimeout = "transcode_timeout"
	KeyLogLevel         = "log_level"
)

// Default values
const (
	// DefaultMaxUploadBytes is the platform upload ceiling: 48 MiB
	DefaultMaxUploadBytes = int64(48 * 1024 * 1024)

	DefaultHealthPort = 10000

	// No subprocess timeout by default; downloads and transcodes run to
	// completion unless a timeout is configured explicitly.
	DefaultFetchTimeout     = time.Duration(0)
	DefaultTranscodeTimeout = time.Duration(0)

	DefaultLogLevel = "info"
)

// Environment binding
const (
	EnvPrefix        = "TGMB"
	ConfigFileName   = "config"
	ConfigFileType   = "toml"
	ConfigSearchPath = "."
)

// Settings holds the application configuration. Credentials are not part of
// Settings; they go through the secrets resolution chain instead.
type Settings struct {
	MaxUploadBytes   int64
	HealthPort       int
	FetchTimeout     time.Duration
	TranscodeTimeout time.Duration
	LogLevel         string
}

// Load reads settings from an optional config.toml in the working directory
// and TGMB_-prefixed environment variables, falling back to defaults. A
// missing config file is not an error.
func Load() (Settings, error) {
	v := viper.New()
	return loadFrom(v)
}

func loadFrom(v *viper.Viper) (Settings, error) {
	v.SetDefault(KeyMaxUploadBytes, DefaultMaxUploadBytes)
	v.SetDefault(KeyHealthPort, DefaultHealthPort)
	v.SetDefault(KeyFetchTimeout, DefaultFetchTimeout)
	v.SetDefault(KeyTranscodeTimeout, DefaultTranscodeTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(ConfigSearchPath)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("error loading config file: %w", err)
		}
	} else {
		log.Infof("Configuration loaded from %s", v.ConfigFileUsed())
	}

	s := Settings{
		MaxUploadBytes:   v.GetInt64(KeyMaxUploadBytes),
		HealthPort:       v.GetInt(KeyHealthPort),
		FetchTimeout:     v.GetDuration(KeyFetchTimeout),
		TranscodeTimeout: v.GetDuration(KeyTranscodeTimeout),
		LogLevel:         v.GetString(KeyLogLevel),
	}
	return s, s.validate()
}

func (s Settings) validate() error {
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", s.MaxUploadBytes)
	}
	if s.HealthPort <= 0 || s.HealthPort > 65535 {
		return fmt.Errorf("health_port out of range: %d", s.HealthPort)
	}
	if s.FetchTimeout < 0 || s.TranscodeTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
