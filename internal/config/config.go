package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"wcagpal/internal/export"
	"wcagpal/internal/palette"
)

const (
	Name           = "wcagpal"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "WCAGPAL"

	DefaultServerAddr   = "127.0.0.1:8787"
	DefaultReadTimeout  = "10s"
	DefaultWriteTimeout = "30s"
	DefaultLogLevel     = "warn"
)

type GeneratorConfig struct {
	Mode string `yaml:"mode" mapstructure:"mode"`
}

type ExportConfig struct {
	Format    string `yaml:"format" mapstructure:"format"`
	OutputDir string `yaml:"outputDir" mapstructure:"outputDir"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr" mapstructure:"addr"`
	AllowedOrigins []string      `yaml:"allowedOrigins" mapstructure:"allowedOrigins"`
	ReadTimeout    time.Duration `yaml:"readTimeout" mapstructure:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout" mapstructure:"writeTimeout"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file,omitempty" mapstructure:"file"`
}

type SystemConfig struct {
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

func GetBaseDir() (string, error) {
	if override := os.Getenv(EnvPrefix + "_BASE_DIR"); override != "" {
		return override, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine base directory: %w", err)
	}

	return filepath.Join(homeDir, fmt.Sprintf(".%s", Name)), nil
}

func CreateBaseDir() (string, error) {
	baseDir, err := GetBaseDir()
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(baseDir, 0750)
	if err != nil {
		return "", fmt.Errorf("could not create %s directory: %w", Name, err)
	}

	return baseDir, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.mode", string(palette.Mixed))
	v.SetDefault("export.format", string(export.FormatText))
	v.SetDefault("export.outputDir", ".")
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.allowedOrigins", []string{})
	v.SetDefault("server.readTimeout", DefaultReadTimeout)
	v.SetDefault("server.writeTimeout", DefaultWriteTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
}

func Default() SystemConfig {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("default config does not decode: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (SystemConfig, error) {
	var cfg SystemConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SystemConfig{}, fmt.Errorf("could not decode config: %w", err)
	}
	return cfg, nil
}

// Load layers defaults, the config file and WCAGPAL_* environment variables.
// A .env file in the working directory is loaded first when present. An
// explicit path must exist; the default path in baseDir is optional.
func Load(path string, baseDir string) (SystemConfig, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return SystemConfig{}, "", fmt.Errorf("could not load .env file: %w", err)
	}

	v := newViper()
	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = filepath.Join(baseDir, ConfigFileName)
	}

	used := ""
	if _, err := os.Stat(path); err == nil || explicit {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SystemConfig{}, "", fmt.Errorf("could not read config file %s: %w", path, err)
		}
		used = v.ConfigFileUsed()
	}

	cfg, err := decode(v)
	if err != nil {
		return SystemConfig{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return SystemConfig{}, "", err
	}
	return cfg, used, nil
}

func (c SystemConfig) Validate() error {
	var errs []error

	if _, err := palette.ParseHarmonyMode(c.Generator.Mode); err != nil {
		errs = append(errs, fmt.Errorf("generator.mode: %w", err))
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		errs = append(errs, fmt.Errorf("export.format: %w", err))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, fmt.Errorf("server.addr: must not be empty"))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server timeouts must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c SystemConfig) Mode() palette.HarmonyMode {
	mode, err := palette.ParseHarmonyMode(c.Generator.Mode)
	if err != nil {
		return palette.Mixed
	}
	return mode
}

func (c SystemConfig) ExportFormat() export.Format {
	format, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return export.FormatText
	}
	return format
}

func Marshal(cfg SystemConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not encode config: %w", err)
	}
	return data, nil
}

var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes the default config into baseDir and refuses to overwrite.
func WriteDefault(baseDir string) (string, error) {
	configFilePath := filepath.Join(baseDir, ConfigFileName)
	if _, err := os.Stat(configFilePath); err == nil {
		return configFilePath, fmt.Errorf("%w: %s", ErrConfigExists, configFilePath)
	}

	data, err := Marshal(Default())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return "", fmt.Errorf("could not create %s directory: %w", Name, err)
	}
	if err := os.WriteFile(configFilePath, data, 0600); err != nil {
		return "", fmt.Errorf("creating a config file errored, got: %w", err)
	}
	return configFilePath, nil
}
