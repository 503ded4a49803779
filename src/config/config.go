// Package config is responsible for finding, parsing and merging the user
// configuration with the default one.
//
// The default configuration is embedded in the binary. The user configuration is
// in $HOME/.musicsearch/config.toml unless another file is given. Only the values
// which are set in the user file replace the defaults. At the end some of the
// values may be overridden by environment variables or a .env file in the working
// directory.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/ironsmile/musicsearch/src/helpers"
)

// ConfigName is the name of the user configuration file in the user directory.
const ConfigName = "config.toml"

// EnvFile is the name of the file with environment variables which is read from
// the working directory.
const EnvFile = ".env"

// Environment variables which override configuration values.
const (
	EnvListen    = "MUSICSEARCH_LISTEN"
	EnvLogLevel  = "MUSICSEARCH_LOG_LEVEL"
	EnvUserAgent = "MUSICSEARCH_USER_AGENT"
)

//go:embed config.default.toml
var defaultConfig []byte

// Config contains everything in config.toml.
type Config struct {
	Listen           string `toml:"listen"`
	Gzip             bool   `toml:"gzip"`
	ReadTimeout      int    `toml:"read_timeout"`
	WriteTimeout     int    `toml:"write_timeout"`
	MaxHeadersSize   int    `toml:"max_header_bytes"`
	LogFile          string `toml:"log_file"`
	LogLevel         string `toml:"log_level"`
	PidFile          string `toml:"pid_file"`
	UserAgent        string `toml:"user_agent"`
	RequestTimeout   int    `toml:"request_timeout"`
	MaxResponseBytes int64  `toml:"max_response_bytes"`
	Metrics          bool   `toml:"metrics"`

	Sources     Sources     `toml:"sources"`
	Enrich      Enrich      `toml:"enrich"`
	Description Description `toml:"description"`
	Artwork     Artwork     `toml:"artwork"`
}

// Sources are the base addresses of the upstream APIs.
type Sources struct {
	MusicBrainz     string `toml:"musicbrainz"`
	Wikidata        string `toml:"wikidata"`
	Wikipedia       string `toml:"wikipedia"`
	CoverArtArchive string `toml:"coverartarchive"`
}

// Enrich configures the creation of enriched records.
type Enrich struct {
	MaxParallel int `toml:"max_parallel"`
}

// Description configures how descriptions are found.
type Description struct {
	FallbackOnError bool `toml:"fallback_on_error"`
}

// Artwork configures the artwork endpoint.
type Artwork struct {
	MaxSize int `toml:"max_size"`
}

// RequestTimeoutDuration returns the upstream request timeout as a time.Duration.
func (cfg *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(cfg.RequestTimeout) * time.Second
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	cfg := new(Config)
	if _, err := toml.Decode(string(defaultConfig), cfg); err != nil {
		return nil, fmt.Errorf("parsing default config: %w", err)
	}
	return cfg, nil
}

// DefaultBytes returns the contents of the default configuration file.
func DefaultBytes() []byte {
	return bytes.Clone(defaultConfig)
}

// FindAndParse returns the default configuration with the user configuration at
// `path` merged on top of it. When `path` is empty the file in the user directory
// is used if it exists. A missing file which was explicitly requested is an error.
//
// Environment overrides are not applied. See ApplyEnv.
func FindAndParse(fsys afero.Fs, path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path, err = UserConfigPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	usrCfg := new(Config)
	md, err := toml.Decode(string(data), usrCfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf(
			"unknown key %q in config file %s",
			undecoded[0].String(),
			path,
		)
	}

	cfg.merge(usrCfg, md)
	return cfg, nil
}

// merge copies on top of cfg all values from `merged` which are defined in its
// file. Tables are merged key by key.
func (cfg *Config) merge(merged *Config, md toml.MetaData) {
	mergeStruct(
		reflect.ValueOf(cfg).Elem(),
		reflect.ValueOf(merged).Elem(),
		md,
		nil,
	)
}

func mergeStruct(cfgVal, mergedVal reflect.Value, md toml.MetaData, parent []string) {
	for i := 0; i < mergedVal.NumField(); i++ {
		field := mergedVal.Type().Field(i)
		key, _, _ := strings.Cut(field.Tag.Get("toml"), ",")
		if key == "" || key == "-" {
			continue
		}

		keyPath := append(append([]string{}, parent...), key)
		if !md.IsDefined(keyPath...) {
			continue
		}

		cfgField := cfgVal.Field(i)
		mergedField := mergedVal.Field(i)

		if mergedField.Kind() == reflect.Struct {
			mergeStruct(cfgField, mergedField, md, keyPath)
			continue
		}

		if !cfgField.CanSet() {
			continue
		}

		cfgField.Set(mergedField)
	}
}

// ApplyEnv overrides some of the configuration values with environment variables.
// Variables in the .env file in fsys's working directory are used when they are
// not set in the environment already. A missing .env file is not an error.
func (cfg *Config) ApplyEnv(fsys afero.Fs, lookupEnv func(string) (string, bool)) error {
	dotEnv := make(map[string]string)

	fh, err := fsys.Open(EnvFile)
	if err == nil {
		dotEnv, err = godotenv.Parse(fh)
		fh.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("opening %s: %w", EnvFile, err)
	}

	lookup := func(key string) (string, bool) {
		if val, ok := lookupEnv(key); ok {
			return val, true
		}
		val, ok := dotEnv[key]
		return val, ok
	}

	for key, dst := range map[string]*string{
		EnvListen:    &cfg.Listen,
		EnvLogLevel:  &cfg.LogLevel,
		EnvUserAgent: &cfg.UserAgent,
	} {
		if val, ok := lookup(key); ok && val != "" {
			*dst = val
		}
	}

	return nil
}

// Validate returns an error for configurations which the server cannot work with.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Listen == "":
		return errors.New("listen address must not be empty")
	case strings.TrimSpace(cfg.UserAgent) == "":
		return errors.New("user_agent must not be empty")
	case cfg.RequestTimeout <= 0:
		return fmt.Errorf("request_timeout must be positive, it is %d", cfg.RequestTimeout)
	case cfg.Enrich.MaxParallel < 0:
		return fmt.Errorf(
			"enrich.max_parallel must not be negative, it is %d",
			cfg.Enrich.MaxParallel,
		)
	}

	return nil
}

// ResolvePaths makes the log and PID file paths absolute. Relative paths are in
// the user directory.
func (cfg *Config) ResolvePaths() error {
	if cfg.LogFile == "" && cfg.PidFile == "" {
		return nil
	}

	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = helpers.AbsolutePath(cfg.LogFile, userPath)
	}
	if cfg.PidFile != "" {
		cfg.PidFile = helpers.AbsolutePath(cfg.PidFile, userPath)
	}

	return nil
}

// UserConfigPath returns the full path to the place where the user's configuration
// file should be.
func UserConfigPath() (string, error) {
	path, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(path, ConfigName), nil
}

// WriteDefault creates the file at `path` with the default configuration. Existing
// files are never replaced.
func WriteDefault(fsys afero.Fs, path string) error {
	if _, err := fsys.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := afero.WriteFile(fsys, path, defaultConfig, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
