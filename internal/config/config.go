// Package config loads todoboard settings from defaults, a TOML or YAML
// file, environment variables and root flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todoboard/internal/logging"
	"github.com/idilsaglam/todoboard/internal/store/profile"
	"github.com/idilsaglam/todoboard/internal/store/todos"
)

const (
	DefaultTheme    = "classic"
	DefaultIDScheme = string(todos.SchemeSequence)

	envPrefix = "TODOBOARD_"
)

// ProjectFiles are looked up in the working directory, first match wins.
var ProjectFiles = []string{"todoboard.toml", ".todoboard.toml", "todoboard.yaml", "todoboard.yml"}

// Config is everything the stores, the logger and the renderers need.
type Config struct {
	Username     string `toml:"username" yaml:"username"`
	IDScheme     string `toml:"id_scheme" yaml:"id_scheme"`
	InitialCount int    `toml:"initial_count" yaml:"initial_count"`
	Theme        string `toml:"theme" yaml:"theme"`
	LogLevel     string `toml:"log_level" yaml:"log_level"`
	LogFormat    string `toml:"log_format" yaml:"log_format"`
	LogFile      string `toml:"log_file" yaml:"log_file"`

	// Path is the file the config was read from, empty when none was found.
	Path string `toml:"-" yaml:"-"`
}

// Overrides carries root flag values. Empty fields leave the config alone.
type Overrides struct {
	Theme    string
	LogLevel string
}

// Default returns the built-in settings.
func Default() *Config {
	lo := logging.DefaultOptions()
	return &Config{
		Username:  profile.DefaultUsername,
		IDScheme:  DefaultIDScheme,
		Theme:     DefaultTheme,
		LogLevel:  lo.Level,
		LogFormat: lo.Format,
	}
}

// Load resolves the config. An explicit path must exist; otherwise
// TODOBOARD_CONFIG, then the project files, then the user config dir are tried.
func Load(path string, over Overrides) (*Config, error) {
	cfg := Default()

	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := LoadFile(cfg, file); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", file, err)
		}
		cfg.Path = file
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	applyOverrides(cfg, over)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes path into cfg, picking the decoder from the extension.
func LoadFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		// an empty file decodes to io.EOF and leaves the defaults alone
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("yaml decode: %w", err)
		}
		return nil
	default:
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("toml decode: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	}
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	var errs []error
	if _, err := todos.ParseIDScheme(c.IDScheme); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormatter(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogOptions converts the logging fields.
func (c *Config) LogOptions() logging.Options {
	o := logging.DefaultOptions()
	o.Level = c.LogLevel
	o.Format = c.LogFormat
	return o
}

func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	if v := os.Getenv(envPrefix + "CONFIG"); v != "" {
		if _, err := os.Stat(v); err != nil {
			return "", fmt.Errorf("%sCONFIG: %w", envPrefix, err)
		}
		return v, nil
	}
	for _, name := range ProjectFiles {
		if fileExists(name) {
			return name, nil
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "todoboard", "config.toml")
		if fileExists(p) {
			return p, nil
		}
	}
	return "", nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv(envPrefix + "USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(envPrefix + "ID_SCHEME"); v != "" {
		cfg.IDScheme = v
	}
	if v := os.Getenv(envPrefix + "INITIAL_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sINITIAL_COUNT: %w", envPrefix, err)
		}
		cfg.InitialCount = n
	}
	if v := os.Getenv(envPrefix + "THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envPrefix + "LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return nil
}

func applyOverrides(cfg *Config, over Overrides) {
	if over.Theme != "" {
		cfg.Theme = over.Theme
	}
	if over.LogLevel != "" {
		cfg.LogLevel = over.LogLevel
	}
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
