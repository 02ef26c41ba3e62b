// Package config loads process-wide configuration. Values are read
// once at startup and are immutable for the process lifetime.
//
// Precedence, lowest to highest: built-in defaults, the TOML config
// file, environment variables (a .env file is folded into the
// environment first).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultCorpusDir      = "data"
	DefaultIndexDir       = "vectorstore"
	DefaultEmbeddingModel = "text-embedding-3-large"
	DefaultLLMModel       = "gpt-4o-mini"
	DefaultTopK           = 5
	DefaultChunkSize      = 800
	DefaultChunkOverlap   = 150
)

// Config holds all process configuration.
type Config struct {
	// CorpusDir is the directory of source documents scanned at
	// cold start to seed the index.
	CorpusDir string `toml:"corpus_dir"`

	// IndexDir is the persisted vector index location.
	IndexDir string `toml:"index_dir"`

	// DataDir holds local state such as chat history.
	DataDir string `toml:"data_dir"`

	Tracker TrackerConfig `toml:"tracker"`
	Models  ModelsConfig  `toml:"models"`
}

// TrackerConfig identifies the external issue tracker.
type TrackerConfig struct {
	// Repo is the "owner/name" repository identifier.
	Repo string `toml:"repo"`

	// Token is the bearer credential.
	Token string `toml:"token"`
}

// ModelsConfig names the external models and retrieval settings.
type ModelsConfig struct {
	// APIKey is the OpenAI API key.
	APIKey string `toml:"api_key"`

	// Embedding is the embedding model identifier.
	Embedding string `toml:"embedding"`

	// LLM is the generative model identifier.
	LLM string `toml:"llm"`

	// TopK is the number of chunks retrieved per question.
	TopK int `toml:"top_k"`

	// ChunkSize is the chunk window size in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the chunk overlap in characters.
	ChunkOverlap int `toml:"chunk_overlap"`
}

// DefaultPath returns the default config file location (~/.assist/config.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".assist", "config.toml"), nil
}

// Load reads configuration from the given TOML file (may be absent),
// folds a .env file into the environment, and applies environment
// overrides. An empty path means the default location.
func Load(path string) (*Config, error) {
	cfg := &Config{
		CorpusDir: DefaultCorpusDir,
		IndexDir:  DefaultIndexDir,
		Models: ModelsConfig{
			Embedding:    DefaultEmbeddingModel,
			LLM:          DefaultLLMModel,
			TopK:         DefaultTopK,
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
		},
	}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file; defaults and environment apply.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// A .env alongside the process is folded into the environment;
	// missing is fine.
	_ = godotenv.Load()

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides config fields from environment variables.
func applyEnv(cfg *Config) {
	setString(&cfg.Tracker.Repo, "GITHUB_REPO")
	setString(&cfg.Tracker.Token, "GITHUB_TOKEN")
	setString(&cfg.Models.APIKey, "OPENAI_API_KEY")
	setString(&cfg.Models.Embedding, "ASSIST_EMBEDDING_MODEL")
	setString(&cfg.Models.LLM, "ASSIST_LLM_MODEL")
	setString(&cfg.CorpusDir, "ASSIST_CORPUS_DIR")
	setString(&cfg.IndexDir, "ASSIST_INDEX_DIR")
	setString(&cfg.DataDir, "ASSIST_DATA_DIR")
	setInt(&cfg.Models.TopK, "ASSIST_TOP_K")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

// SaveToken writes the tracker token into the TOML config file,
// creating the file and its directory if needed. File mode is 0600
// since the file now holds a credential.
func SaveToken(path, token string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	raw := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tracker, _ := raw["tracker"].(map[string]any)
	if tracker == nil {
		tracker = map[string]any{}
	}
	tracker["token"] = token
	raw["tracker"] = tracker

	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
