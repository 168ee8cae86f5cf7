package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/uyouii/cruise-profile/model"
	"go.uber.org/zap"
)

type Config struct {
	// Cruise profile evaluation
	MaxSampleAgeDays         float64
	SampleThresholdForMedian int
	OutlierThresholdPercent  float64

	// calendar the time restrictions are written in
	TimeZone string

	LogLevel string
}

// Load reads .env from the working directory if present, then the environment.
func Load() *Config {
	return LoadFrom()
}

// LoadFrom reads the given env files, variables already set in the environment win.
func LoadFrom(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	return &Config{
		MaxSampleAgeDays:         getEnvFloat("CRUISE_MAX_SAMPLE_AGE_DAYS", model.DefaultMaxSampleAgeDays),
		SampleThresholdForMedian: getEnvInt("CRUISE_SAMPLE_THRESHOLD_FOR_MEDIAN", model.DefaultSampleThresholdForMedian),
		OutlierThresholdPercent:  getEnvFloat("CRUISE_OUTLIER_THRESHOLD_PERCENT", model.DefaultOutlierThresholdPercent),

		TimeZone: getEnv("CRUISE_TIMEZONE", "Local"),

		LogLevel: getEnv("CRUISE_LOG_LEVEL", "info"),
	}
}

func (c *Config) Cruise() model.Config {
	return model.Config{
		MaxSampleAgeDays:         c.MaxSampleAgeDays,
		SampleThresholdForMedian: c.SampleThresholdForMedian,
		OutlierThresholdPercent:  c.OutlierThresholdPercent,
	}
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("parse env as float failed, using default", zap.String("key", key),
			zap.Float64("default", defaultValue), zap.Error(err))
		return defaultValue
	}
	return floatValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("parse env as int failed, using default", zap.String("key", key),
			zap.Int("default", defaultValue), zap.Error(err))
		return defaultValue
	}
	return intValue
}
