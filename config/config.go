package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Insights InsightsConfig `yaml:"insights"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	CORS     CORSConfig     `yaml:"cors"`

	// GeminiAPIKey comes from the environment, never from config.yaml.
	GeminiAPIKey string `yaml:"-"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// InsightsConfig holds the static scope -> model/length table used by the
// generation gateway. Model selection is fixed per scope, not caller-configurable.
type InsightsConfig struct {
	Scopes map[string]ScopeConfig `yaml:"scopes"`
}

type ScopeConfig struct {
	Model           string `yaml:"model"`
	MaxOutputTokens int32  `yaml:"max_output_tokens"`
}

type UploadsConfig struct {
	Dir string `yaml:"dir"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Insight scope tags. Every persisted insight carries exactly one of these.
const (
	ScopeSingle           = "single"
	ScopeUserPattern      = "user-pattern"
	ScopeCommunityPattern = "community-pattern"
)

func defaultScopes() map[string]ScopeConfig {
	return map[string]ScopeConfig{
		ScopeSingle:           {Model: "gemini-2.5-flash", MaxOutputTokens: 500},
		ScopeUserPattern:      {Model: "gemini-2.5-pro", MaxOutputTokens: 1000},
		ScopeCommunityPattern: {Model: "gemini-2.5-pro", MaxOutputTokens: 2000},
	}
}

// Load reads .env and config.yaml from the repository base path and returns
// the resulting configuration. Missing yaml values fall back to defaults so a
// bare checkout still starts against local docker-compose Mongo.
func Load() (AppConfig, error) {
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := AppConfig{
		Server:   ServerConfig{Port: 3001},
		Logging:  LoggingConfig{Level: "info"},
		Mongo:    MongoConfig{URI: "mongodb://localhost:27017", Database: "dreamjournal"},
		Insights: InsightsConfig{Scopes: defaultScopes()},
		Uploads:  UploadsConfig{Dir: "uploads"},
	}

	if data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE)); err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	}

	// Environment overrides for deploy targets.
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	if name := os.Getenv("MONGODB_DATABASE"); name != "" {
		c.Mongo.Database = name
	}
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		c.CORS.AllowedOrigins = append(c.CORS.AllowedOrigins, origin)
	}
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Any scope missing from config.yaml keeps its compiled-in default.
	for scope, sc := range defaultScopes() {
		if c.Insights.Scopes == nil {
			c.Insights.Scopes = map[string]ScopeConfig{}
		}
		if _, ok := c.Insights.Scopes[scope]; !ok {
			c.Insights.Scopes[scope] = sc
		}
	}

	return c, nil
}

// Scope returns the model/length entry for a scope tag, falling back to the
// single-dream entry for unknown tags.
func (c InsightsConfig) Scope(tag string) ScopeConfig {
	if sc, ok := c.Scopes[tag]; ok {
		return sc
	}
	return c.Scopes[ScopeSingle]
}

// GetBasePath walks up from the working directory until it finds config.yaml,
// so binaries and tests run from nested directories resolve the same files.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
