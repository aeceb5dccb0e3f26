package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = ".fusion"
	configType = "json"
	configDir  = "fusion"

	defaultVersion         = "v14.0"
	defaultEntry           = "fusion"
	defaultMaxPromptTokens = 8000
	defaultLogLevel        = "INFO"
)

// Config mirrors the keys of .fusion.json. Read once at startup, no reload.
type Config struct {
	Version         string
	Entry           string
	MaxPromptTokens int
	EnabledAgents   []string
	ToolsEnabled    bool
	GithubPush      bool
	AsyncMode       bool
	MemoryEnabled   bool
	PatternFallback bool
	AutoCommit      bool
	DebugMode       bool
	LogLevel        string

	// Path is the file the config was read from, empty when defaults were
	// used.
	Path string
}

// Load reads .fusion.json from explicitPath when given, otherwise from the
// working directory then ~/.config/fusion. A missing file yields defaults; a
// malformed file is an error.
func Load(cfg *viper.Viper, explicitPath string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	setDefaults(cfg)

	if explicitPath != "" {
		cfg.SetConfigFile(explicitPath)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.AddConfigPath(filepath.Join(homeDir, ".config", configDir))
		}
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := fromViper(cfg)
	loaded.applyDefaults()

	return loaded, nil
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault("version", defaultVersion)
	cfg.SetDefault("entry", defaultEntry)
	cfg.SetDefault("max_prompt_tokens", defaultMaxPromptTokens)
	cfg.SetDefault("enabled_agents", []string{"vp_design", "evaluator"})
	cfg.SetDefault("tools_enabled", true)
	cfg.SetDefault("github_push", true)
	cfg.SetDefault("async_mode", true)
	cfg.SetDefault("memory_enabled", true)
	cfg.SetDefault("pattern_fallback", true)
	cfg.SetDefault("auto_commit", true)
	cfg.SetDefault("debug_mode", false)
	cfg.SetDefault("log_level", defaultLogLevel)
}

func fromViper(cfg *viper.Viper) Config {
	return Config{
		Version:         cfg.GetString("version"),
		Entry:           cfg.GetString("entry"),
		MaxPromptTokens: cfg.GetInt("max_prompt_tokens"),
		EnabledAgents:   cfg.GetStringSlice("enabled_agents"),
		ToolsEnabled:    cfg.GetBool("tools_enabled"),
		GithubPush:      cfg.GetBool("github_push"),
		AsyncMode:       cfg.GetBool("async_mode"),
		MemoryEnabled:   cfg.GetBool("memory_enabled"),
		PatternFallback: cfg.GetBool("pattern_fallback"),
		AutoCommit:      cfg.GetBool("auto_commit"),
		DebugMode:       cfg.GetBool("debug_mode"),
		LogLevel:        cfg.GetString("log_level"),
		Path:            cfg.ConfigFileUsed(),
	}
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = defaultVersion
	}
	if c.Entry == "" {
		c.Entry = defaultEntry
	}
	if c.MaxPromptTokens <= 0 {
		c.MaxPromptTokens = defaultMaxPromptTokens
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}
