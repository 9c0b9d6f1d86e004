// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/swapwatch/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete swapwatch configuration.
type Config struct {
	Version string `toml:"version"`

	Session    SessionConfig    `toml:"session"`
	Analytics  AnalyticsConfig  `toml:"analytics"`
	Connection ConnectionConfig `toml:"connection"`
	Locale     LocaleConfig     `toml:"locale"`
	UI         UIConfig         `toml:"ui"`
	Log        LogConfig        `toml:"log"`
}

// SessionConfig contains the idle-timeout policy.
type SessionConfig struct {
	// IdleTimeoutSeconds is the inactivity span after which the session is cleared.
	IdleTimeoutSeconds int `toml:"idle_timeout_seconds"`
	// TickPeriod is the interval between idle checks.
	TickPeriod time.Duration `toml:"tick_period"`
	// ActivityCooldown is the activity coalescing window.
	ActivityCooldown time.Duration `toml:"activity_cooldown"`
}

// IdleTimeout returns IdleTimeoutSeconds as a duration.
func (s SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

// AnalyticsConfig contains analytics delivery settings.
type AnalyticsConfig struct {
	Workers       []string `toml:"workers"`
	Network       string   `toml:"network"`
	Endpoint      string   `toml:"endpoint"`
	Token         string   `toml:"token"`
	LedgerPath    string   `toml:"ledger_path"`
	RatePerSecond float64  `toml:"rate_per_second"`
	QueueSize     int      `toml:"queue_size"`
}

// ConnectionConfig contains the node endpoint.
type ConnectionConfig struct {
	// NodeURL is a ws:// or wss:// endpoint. Empty means offline instances.
	NodeURL     string        `toml:"node_url"`
	DialTimeout time.Duration `toml:"dial_timeout"`
}

// LocaleConfig contains language settings.
type LocaleConfig struct {
	Default string `toml:"default"`
	// Dir holds <code>.yaml catalogs that override the built-in ones.
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "light", "dark" or "" to detect from the terminal background.
	Theme string `toml:"theme"`
	Mouse bool   `toml:"mouse"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	// File receives logs while the TUI owns the terminal.
	File string `toml:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default idle timeout: 15 minutes.
const DefaultIdleTimeoutSeconds = 900

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Session: SessionConfig{
			IdleTimeoutSeconds: DefaultIdleTimeoutSeconds,
			TickPeriod:         10 * time.Second,
			ActivityCooldown:   5 * time.Second,
		},
		Analytics: AnalyticsConfig{
			Workers:       []string{"mix"},
			RatePerSecond: 5,
			QueueSize:     128,
		},
		Connection: ConnectionConfig{
			DialTimeout: 10 * time.Second,
		},
		Locale: LocaleConfig{
			Default: "en",
		},
		UI: UIConfig{
			Mouse: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the swapwatch configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".swapwatch"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the default config file. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config at path, applies .env and environment
// overrides, fills defaults and validates.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", statErr)
	}

	LoadDotEnv(".env", filepath.Join(filepath.Dir(path), ".env"))
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads each existing file into the environment. Variables already
// set are not overwritten.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load %s: %v\n", p, err)
		}
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the default config path.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# swapwatch configuration file")
	fmt.Fprintln(&buf, "# Generated by swapwatch - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes    = map[string]bool{"": true, "light": true, "dark": true}
	validLogLevels = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true}
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Session.IdleTimeoutSeconds <= 0 {
		errs = append(errs, ValidationError{
			Field:   "session.idle_timeout_seconds",
			Message: fmt.Sprintf("must be positive, got %d", c.Session.IdleTimeoutSeconds),
		})
	}
	if c.Session.TickPeriod <= 0 {
		errs = append(errs, ValidationError{Field: "session.tick_period", Message: "must be positive"})
	} else if c.Session.IdleTimeout() > 0 && c.Session.IdleTimeout() < c.Session.TickPeriod {
		errs = append(errs, ValidationError{
			Field:   "session.idle_timeout_seconds",
			Message: fmt.Sprintf("timeout %v is shorter than tick period %v", c.Session.IdleTimeout(), c.Session.TickPeriod),
		})
	}
	if c.Session.ActivityCooldown < 0 {
		errs = append(errs, ValidationError{Field: "session.activity_cooldown", Message: "must not be negative"})
	}

	if c.Analytics.Endpoint != "" {
		if u, err := url.Parse(c.Analytics.Endpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, ValidationError{
				Field:   "analytics.endpoint",
				Message: fmt.Sprintf("invalid URL '%s', must be http or https", c.Analytics.Endpoint),
			})
		}
	}
	if c.Analytics.RatePerSecond < 0 {
		errs = append(errs, ValidationError{Field: "analytics.rate_per_second", Message: "must not be negative"})
	}
	if c.Analytics.QueueSize < 0 {
		errs = append(errs, ValidationError{Field: "analytics.queue_size", Message: "must not be negative"})
	}

	if c.Connection.NodeURL != "" {
		if u, err := url.Parse(c.Connection.NodeURL); err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
			errs = append(errs, ValidationError{
				Field:   "connection.node_url",
				Message: fmt.Sprintf("invalid URL '%s', must be ws or wss", c.Connection.NodeURL),
			})
		}
	}

	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: light, dark (or empty to detect)", c.UI.Theme),
		})
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s'", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero values that have a default.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.Session.TickPeriod == 0 {
		c.Session.TickPeriod = d.Session.TickPeriod
	}
	if c.Session.ActivityCooldown == 0 {
		c.Session.ActivityCooldown = d.Session.ActivityCooldown
	}
	if len(c.Analytics.Workers) == 0 {
		c.Analytics.Workers = d.Analytics.Workers
	}
	if c.Analytics.QueueSize == 0 {
		c.Analytics.QueueSize = d.Analytics.QueueSize
	}
	if c.Connection.DialTimeout == 0 {
		c.Connection.DialTimeout = d.Connection.DialTimeout
	}
	if c.Locale.Default == "" {
		c.Locale.Default = d.Locale.Default
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - SWAPWATCH_IDLE_TIMEOUT: session.idle_timeout_seconds
//   - SWAPWATCH_CHAIN_NAME: analytics.network
//   - SWAPWATCH_NODE_URL: connection.node_url
//   - SWAPWATCH_LANGUAGE: locale.default
//   - SWAPWATCH_THEME: ui.theme
//   - SWAPWATCH_LOG_LEVEL: log.level
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SWAPWATCH_IDLE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Session.IdleTimeoutSeconds = secs
		} else if d, err := time.ParseDuration(v); err == nil {
			c.Session.IdleTimeoutSeconds = int(d / time.Second)
		}
	}
	if v := os.Getenv("SWAPWATCH_CHAIN_NAME"); v != "" {
		c.Analytics.Network = v
	}
	if v := os.Getenv("SWAPWATCH_NODE_URL"); v != "" {
		c.Connection.NodeURL = v
	}
	if v := os.Getenv("SWAPWATCH_LANGUAGE"); v != "" {
		c.Locale.Default = v
	}
	if v := os.Getenv("SWAPWATCH_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SWAPWATCH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

var durationType = reflect.TypeOf(time.Duration(0))

// Get retrieves a value by dotted key, e.g. "session.tick_period".
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set assigns a value by dotted key. Strings are converted to the field type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")
	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts snake_case or kebab-case to a Go field name.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(part[:1]))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets field from value with string conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		if field.Type() == durationType {
			d, err := time.ParseDuration(strVal)
			if err != nil {
				return fmt.Errorf("invalid duration value: %w", err)
			}
			field.SetInt(int64(d))
			return nil
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %w", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(lower == "1" || lower == "true" || lower == "yes")
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				var items []string
				for _, s := range strings.Split(strVal, ",") {
					if s = strings.TrimSpace(s); s != "" {
						items = append(items, s)
					}
				}
				field.Set(reflect.ValueOf(items))
				return nil
			}
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"session.idle_timeout_seconds",
		"session.tick_period",
		"session.activity_cooldown",
		"analytics.workers",
		"analytics.network",
		"analytics.endpoint",
		"analytics.token",
		"analytics.ledger_path",
		"analytics.rate_per_second",
		"analytics.queue_size",
		"connection.node_url",
		"connection.dial_timeout",
		"locale.default",
		"locale.dir",
		"locale.watch",
		"ui.theme",
		"ui.mouse",
		"log.level",
		"log.file",
	}
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("error encoding config: %v", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process configuration, loading it on first access.
// A load failure falls back to defaults.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the process configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the process configuration. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the process configuration.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
