package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakoblorz/lion/internal/models"
	"github.com/jakoblorz/lion/internal/toolchain"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = ".lion"

	// EnvPrefix prefixes every environment override (LION_BUILD_DIR, ...).
	EnvPrefix = "LION"
)

// Config holds all application configuration.
type Config struct {
	BuildDir     string          `mapstructure:"build_dir"`
	ArtifactName string          `mapstructure:"artifact_name"`
	Toolchain    ToolchainConfig `mapstructure:"toolchain"`
	Log          LogConfig       `mapstructure:"log"`
}

// ToolchainConfig names the external binaries used to build and run files.
type ToolchainConfig struct {
	Python string `mapstructure:"python"`
	Go     string `mapstructure:"go"`
	C      string `mapstructure:"c"`
	Cpp    string `mapstructure:"cpp"`
	Rust   string `mapstructure:"rust"`
	Javac  string `mapstructure:"javac"`
	Java   string `mapstructure:"java"`
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	bin := toolchain.DefaultBinaries()
	return &Config{
		BuildDir:     models.BuildDirName,
		ArtifactName: "lion_compiled",
		Toolchain: ToolchainConfig{
			Python: bin.Python,
			Go:     bin.Go,
			C:      bin.C,
			Cpp:    bin.Cpp,
			Rust:   bin.Rust,
			Javac:  bin.Javac,
			Java:   bin.Java,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("build_dir", d.BuildDir)
	v.SetDefault("artifact_name", d.ArtifactName)
	v.SetDefault("toolchain.python", d.Toolchain.Python)
	v.SetDefault("toolchain.go", d.Toolchain.Go)
	v.SetDefault("toolchain.c", d.Toolchain.C)
	v.SetDefault("toolchain.cpp", d.Toolchain.Cpp)
	v.SetDefault("toolchain.rust", d.Toolchain.Rust)
	v.SetDefault("toolchain.javac", d.Toolchain.Javac)
	v.SetDefault("toolchain.java", d.Toolchain.Java)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads configuration from path, or from .lion.{yaml,toml,json} in
// searchDir when path is empty, then applies LION_* environment overrides.
// A missing default config file is not an error; a missing explicit one is.
func Load(path, searchDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(searchDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if strings.TrimSpace(c.BuildDir) == "" {
		warnings = append(warnings, fmt.Sprintf("build_dir is empty, using %q", models.BuildDirName))
	}
	if strings.TrimSpace(c.ArtifactName) == "" {
		warnings = append(warnings, "artifact_name is empty, using \"lion_compiled\"")
	}

	tools := map[string]string{
		"python": c.Toolchain.Python,
		"go":     c.Toolchain.Go,
		"c":      c.Toolchain.C,
		"cpp":    c.Toolchain.Cpp,
		"rust":   c.Toolchain.Rust,
		"javac":  c.Toolchain.Javac,
		"java":   c.Toolchain.Java,
	}
	for _, key := range []string{"python", "go", "c", "cpp", "rust", "javac", "java"} {
		if strings.TrimSpace(tools[key]) == "" {
			warnings = append(warnings, fmt.Sprintf("toolchain.%s is empty, using the default binary", key))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "":
	default:
		warnings = append(warnings, fmt.Sprintf("log level %q is not recognized, using warn", c.Log.Level))
	}

	return warnings
}

// Settings converts the configuration into recipe settings for the host
// platform, falling back to defaults for blank values.
func (c *Config) Settings() toolchain.Settings {
	s := toolchain.DefaultSettings()

	if v := strings.TrimSpace(c.BuildDir); v != "" {
		s.BuildDir = v
	}
	if v := strings.TrimSpace(c.ArtifactName); v != "" {
		s.ArtifactName = v
	}

	override := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	override(&s.Binaries.Python, c.Toolchain.Python)
	override(&s.Binaries.Go, c.Toolchain.Go)
	override(&s.Binaries.C, c.Toolchain.C)
	override(&s.Binaries.Cpp, c.Toolchain.Cpp)
	override(&s.Binaries.Rust, c.Toolchain.Rust)
	override(&s.Binaries.Javac, c.Toolchain.Javac)
	override(&s.Binaries.Java, c.Toolchain.Java)

	return s
}
