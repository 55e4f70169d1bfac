package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := loadFrom(viper.New())
	if err != nil {
		t.Fatalf("loadFrom() returned error: %v", err)
	}

	if s.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Errorf("MaxUploadBytes = %d, expected %d", s.MaxUploadBytes, DefaultMaxUploadBytes)
	}
	if s.HealthPort != DefaultHealthPort {
		t.Errorf("HealthPort = %d, expected %d", s.HealthPort, DefaultHealthPort)
	}
	if s.FetchTimeout != 0 {
		t.Errorf("FetchTimeout = %v, expected 0 (disabled)", s.FetchTimeout)
	}
	if s.TranscodeTimeout != 0 {
		t.Errorf("TranscodeTimeout = %v, expected 0 (disabled)", s.TranscodeTimeout)
	}
	if s.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, expected %s", s.LogLevel, DefaultLogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set(KeyMaxUploadBytes, int64(10*1024*1024))
	v.Set(KeyHealthPort, 8080)
	v.Set(KeyFetchTimeout, "5m")

	s, err := loadFrom(v)
	if err != nil {
		t.Fatalf("loadFrom() returned error: %v", err)
	}

	if s.MaxUploadBytes != 10*1024*1024 {
		t.Errorf("MaxUploadBytes = %d, expected %d", s.MaxUploadBytes, 10*1024*1024)
	}
	if s.HealthPort != 8080 {
		t.Errorf("HealthPort = %d, expected 8080", s.HealthPort)
	}
	if s.FetchTimeout != 5*time.Minute {
		t.Errorf("FetchTimeout = %v, expected 5m", s.FetchTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"zero ceiling", KeyMaxUploadBytes, 0},
		{"negative ceiling", KeyMaxUploadBytes, -1},
		{"zero port", KeyHealthPort, 0},
		{"port too large", KeyHealthPort, 70000},
		{"negative timeout", KeyFetchTimeout, "-1s"},
	}

	for _, test := range tests {
		v := viper.New()
		v.Set(test.key, test.value)
		if _, err := loadFrom(v); err == nil {
			t.Errorf("%s: expected validation error, got nil", test.name)
		}
	}
}
