package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/granjasoft/avicola-tracker/internal/dashboard"
	"github.com/granjasoft/avicola-tracker/internal/models"
)

// Config is the process configuration, read from config.yaml when present
// and overridable through environment variables (AVICOLA_DATABASE_URL etc.).
type Config struct {
	DatabaseURL string `mapstructure:"database_url"`
	RedisAddr   string `mapstructure:"redis_addr"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	Port        string `mapstructure:"port"`

	// RecordSchema selects the production record layout: "graded" or
	// "generic". A deployment runs exactly one.
	RecordSchema string `mapstructure:"record_schema"`

	Aggregation AggregationConfig `mapstructure:"aggregation"`
}

// AggregationConfig mirrors dashboard.AggregatorConfig in configuration
// form, keyed by grade column name.
type AggregationConfig struct {
	GradeMassKg       map[string]float64 `mapstructure:"grade_mass_kg"`
	GenericUnitMassKg float64            `mapstructure:"generic_unit_mass_kg"`
	OutputMatch       string             `mapstructure:"output_match"`
	FeedCode          int                `mapstructure:"feed_code"`
	MortalityCode     int                `mapstructure:"mortality_code"`
}

// Load reads configuration with defaults suitable for local development.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("AVICOLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := dashboard.DefaultAggregatorConfig()
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("port", "8080")
	v.SetDefault("record_schema", string(models.SchemaGraded))
	v.SetDefault("aggregation.generic_unit_mass_kg", defaults.GenericUnitMassKg)
	v.SetDefault("aggregation.output_match", defaults.OutputDescriptionMatch)
	v.SetDefault("aggregation.feed_code", defaults.FeedCode)
	v.SetDefault("aggregation.mortality_code", defaults.MortalityCode)

	if err := v.ReadInConfig(); err != nil {
		// config.yaml is optional; anything else is a real failure.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.RecordSchema != string(models.SchemaGraded) && cfg.RecordSchema != string(models.SchemaGeneric) {
		return Config{}, fmt.Errorf("invalid record_schema %q", cfg.RecordSchema)
	}
	return cfg, nil
}

// AggregatorConfig converts the configured aggregation table into the form
// the dashboard engine consumes, falling back to the default mass table when
// none is configured.
func (c Config) AggregatorConfig() dashboard.AggregatorConfig {
	out := dashboard.DefaultAggregatorConfig()
	if len(c.Aggregation.GradeMassKg) > 0 {
		table := make(map[models.Grade]float64, len(c.Aggregation.GradeMassKg))
		for col, mass := range c.Aggregation.GradeMassKg {
			table[models.Grade(col)] = mass
		}
		out.GradeMassKg = table
	}
	if c.Aggregation.GenericUnitMassKg > 0 {
		out.GenericUnitMassKg = c.Aggregation.GenericUnitMassKg
	}
	if c.Aggregation.OutputMatch != "" {
		out.OutputDescriptionMatch = c.Aggregation.OutputMatch
	}
	if c.Aggregation.FeedCode != 0 {
		out.FeedCode = c.Aggregation.FeedCode
	}
	if c.Aggregation.MortalityCode != 0 {
		out.MortalityCode = c.Aggregation.MortalityCode
	}
	return out
}
