package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"k8s.io/apimachinery/pkg/labels"
)

var ErrDurationTooShort = errors.New("duration below minimum")

type Config struct {
	KubeConfig     string
	KubeMaster     string
	LogLevel       string
	LogFormat      string
	HTTPPort       string
	MetricsPort    string
	KindName       string
	Namespace      string
	OperatorLabels map[string]string
	ResyncPeriod   time.Duration
	PingerInterval time.Duration
	SweepSchedule  string
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:    getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:    getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:      getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:     getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:      getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:   getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
		KindName:      getEnvOrDefault(envKeyKindName, defaultKindName),
		Namespace:     os.Getenv(envKeyNamespace),
		SweepSchedule: os.Getenv(envKeySweepSchedule),
	}

	operatorLabels, err := labels.ConvertSelectorToLabelsMap(
		getEnvOrDefault(envKeyOperatorLabels, defaultOperatorLabels),
	)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envKeyOperatorLabels, err)
	}

	cfg.OperatorLabels = operatorLabels

	cfg.ResyncPeriod, err = getDuration(envKeyResyncPeriod, defaultResyncPeriod, envMinResyncPeriod)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval, err = getDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getDuration(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minValue {
		return 0, fmt.Errorf("%s=%s: %w (%s)", key, value, ErrDurationTooShort, minValue)
	}

	return value, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	value := os.Getenv(key)
	if value == "" {
		return os.Getenv(fallbackKey)
	}

	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
