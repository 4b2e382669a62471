// Package config loads branchy settings from defaults, an optional YAML
// file, BRANCHY_* environment variables and command line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName   = "branchy"
	envPrefix = "BRANCHY"
)

var validThemes = []string{"auto", "light", "dark"}

type Config struct {
	Theme         string      `mapstructure:"theme" yaml:"theme"`
	Watch         bool        `mapstructure:"watch" yaml:"watch"`
	WatchDebounce Duration    `mapstructure:"watch_debounce" yaml:"watch_debounce"`
	Syntax        bool        `mapstructure:"syntax" yaml:"syntax"`
	Verbose       bool        `mapstructure:"verbose" yaml:"verbose"`
	Git           GitConfig   `mapstructure:"git" yaml:"git"`
	Error         ErrorConfig `mapstructure:"error" yaml:"error"`
}

// GitConfig controls how the git executable is invoked.
type GitConfig struct {
	Binary  string   `mapstructure:"binary" yaml:"binary"`
	Timeout Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ErrorConfig controls the auto-dismiss countdown of the error banner.
type ErrorConfig struct {
	DismissAfter Duration `mapstructure:"dismiss_after" yaml:"dismiss_after"`
	Tick         Duration `mapstructure:"tick" yaml:"tick"`
}

// Duration is a time.Duration that reads and writes as "300ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Theme:         "auto",
		Watch:         true,
		WatchDebounce: Duration(300 * time.Millisecond),
		Syntax:        true,
		Git: GitConfig{
			Binary:  "git",
			Timeout: Duration(time.Minute),
		},
		Error: ErrorConfig{
			DismissAfter: Duration(3 * time.Second),
			Tick:         Duration(100 * time.Millisecond),
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("watch", def.Watch)
	v.SetDefault("watch_debounce", def.WatchDebounce.String())
	v.SetDefault("syntax", def.Syntax)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("git.binary", def.Git.Binary)
	v.SetDefault("git.timeout", def.Git.Timeout.String())
	v.SetDefault("error.dismiss_after", def.Error.DismissAfter.String())
	v.SetDefault("error.tick", def.Error.Tick.String())
}

// flagKeys maps command line flags to the config keys they override.
var flagKeys = map[string]string{
	"mode":    "theme",
	"verbose": "verbose",
	"git":     "git.binary",
}

// negatedFlags are boolean flags that turn a key off when set.
var negatedFlags = map[string]string{
	"nowatch":  "watch",
	"nosyntax": "syntax",
}

// Options selects where Load reads from. A zero value reads the default
// config file, if any, and the environment.
type Options struct {
	// File is an explicit config file. Unlike the default location it
	// must exist.
	File  string
	Flags *pflag.FlagSet
}

func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts.File); err != nil {
		return nil, err
	}
	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		for name, key := range negatedFlags {
			if !opts.Flags.Changed(name) {
				continue
			}
			off, err := opts.Flags.GetBool(name)
			if err != nil {
				return nil, fmt.Errorf("flag %s: %w", name, err)
			}
			v.Set(key, !off)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}
	dir, err := Dir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Dir returns the directory holding config.yaml.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(validThemes, c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q: must be one of %s", c.Theme, strings.Join(validThemes, ", ")))
	}
	if strings.TrimSpace(c.Git.Binary) == "" {
		errs = append(errs, errors.New("git.binary: must not be empty"))
	}
	if c.Git.Timeout < 0 {
		errs = append(errs, fmt.Errorf("git.timeout %s: must not be negative", c.Git.Timeout))
	}
	if c.WatchDebounce <= 0 {
		errs = append(errs, fmt.Errorf("watch_debounce %s: must be positive", c.WatchDebounce))
	}
	if c.Error.DismissAfter <= 0 {
		errs = append(errs, fmt.Errorf("error.dismiss_after %s: must be positive", c.Error.DismissAfter))
	}
	if c.Error.Tick <= 0 || c.Error.Tick > c.Error.DismissAfter {
		errs = append(errs, fmt.Errorf("error.tick %s: must be positive and at most error.dismiss_after", c.Error.Tick))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
