package cli

import (
	"errors"
	"fmt"

	"github.com/torqueware/assist/internal/adapters/driven/embedding/openai"
	"github.com/torqueware/assist/internal/adapters/driven/extractor/pdf"
	openaillm "github.com/torqueware/assist/internal/adapters/driven/llm/openai"
	"github.com/torqueware/assist/internal/adapters/driven/storage/memory"
	"github.com/torqueware/assist/internal/adapters/driven/storage/sqlite"
	"github.com/torqueware/assist/internal/adapters/driven/tracker/github"
	"github.com/torqueware/assist/internal/adapters/driven/vector/chromem"
	"github.com/torqueware/assist/internal/config"
	"github.com/torqueware/assist/internal/core/ports/driven"
	"github.com/torqueware/assist/internal/core/services"
	"github.com/torqueware/assist/internal/logger"
	"github.com/torqueware/assist/internal/splitter"
)

// Wiring state shared by ensure* helpers. Built once per process.
var (
	vectorIndex      driven.VectorIndex
	embeddingService driven.EmbeddingService
	retriever        services.Retriever
)

func ensureConfig() error {
	if cfg != nil {
		return nil
	}
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// ensureIndexer wires the build-side pipeline: extractor, embeddings,
// vector index and the ingest service.
func ensureIndexer() error {
	if indexerService != nil {
		return nil
	}
	if err := ensureConfig(); err != nil {
		return err
	}
	if cfg.Models.APIKey == "" {
		return errors.New("OpenAI API key not configured: set OPENAI_API_KEY or models.api_key")
	}

	if embeddingService == nil {
		svc, err := openai.NewEmbeddingService(openai.Config{
			APIKey: cfg.Models.APIKey,
			Model:  cfg.Models.Embedding,
		})
		if err != nil {
			return err
		}
		embeddingService = svc
	}
	if vectorIndex == nil {
		idx, err := chromem.Open(cfg.IndexDir)
		if err != nil {
			return fmt.Errorf("open vector index: %w", err)
		}
		vectorIndex = idx
	}

	split := splitter.New(
		splitter.WithWindowSize(cfg.Models.ChunkSize),
		splitter.WithOverlap(cfg.Models.ChunkOverlap),
	)
	indexerService = services.NewIngestService(pdf.New(), embeddingService, vectorIndex, split, cfg.CorpusDir)
	return nil
}

func ensureTracker() error {
	if ticketTracker != nil {
		return nil
	}
	if err := ensureConfig(); err != nil {
		return err
	}
	if cfg.Tracker.Repo == "" || cfg.Tracker.Token == "" {
		return errors.New("issue tracker not configured: set GITHUB_REPO and GITHUB_TOKEN, or run 'assist auth'")
	}
	tracker, err := github.New(github.Config{
		Repo:  cfg.Tracker.Repo,
		Token: cfg.Tracker.Token,
	})
	if err != nil {
		return err
	}
	ticketTracker = tracker
	return nil
}

// ensureAssistant wires the full answer pipeline on top of the
// indexer and tracker.
func ensureAssistant() error {
	if assistantService != nil {
		return nil
	}
	if err := ensureIndexer(); err != nil {
		return err
	}
	if err := ensureTracker(); err != nil {
		return err
	}

	llm, err := openaillm.NewLLMService(openaillm.Config{
		APIKey: cfg.Models.APIKey,
		Model:  cfg.Models.LLM,
	})
	if err != nil {
		return err
	}

	if retriever == nil {
		retriever = services.NewRetrieverService(indexerService, embeddingService, vectorIndex, cfg.Models.TopK)
	}
	assistantService = services.NewAssistantService(retriever, llm, ticketTracker, cfg.Models.TopK)
	return nil
}

// ensureHistory wires the persistent chat history, falling back to an
// in-memory store when the database cannot be opened.
func ensureHistory() error {
	if historyStore != nil {
		return nil
	}
	if err := ensureConfig(); err != nil {
		return err
	}
	store, err := sqlite.NewHistoryStore(cfg.DataDir)
	if err != nil {
		logger.Warn("chat history database unavailable, history will not persist: %v", err)
		historyStore = memory.NewHistoryStore()
		return nil
	}
	historyStore = store
	return nil
}
