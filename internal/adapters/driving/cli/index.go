package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torqueware/assist/internal/adapters/driven/watcher"
	"github.com/torqueware/assist/internal/logger"
)

var (
	indexForce bool
	indexWatch bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the document index",
	Long: `Extracts, chunks and embeds every PDF in the corpus directory and
persists the result to the vector index.

Building is skipped when the index already holds documents; use --force
to discard it and rebuild. With --watch the command keeps running and
rebuilds whenever a PDF in the corpus directory changes.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVarP(&indexForce, "force", "f", false, "discard the existing index and rebuild")
	indexCmd.Flags().BoolVarP(&indexWatch, "watch", "w", false, "rebuild on corpus changes")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if err := ensureIndexer(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := indexerService.Build(ctx, indexForce); err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}
	cmd.Println("Index is up to date.")

	if !indexWatch {
		return nil
	}

	w, err := watcher.New(nil)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	events, err := w.Watch(ctx, cfg.CorpusDir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.CorpusDir, err)
	}

	cmd.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", cfg.CorpusDir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := indexerService.Build(ctx, true); err != nil {
				// Keep watching; a broken rebuild should not end the session.
				logger.Error("rebuild failed: %v", err)
				continue
			}
			cmd.Println("Index rebuilt.")
		}
	}
}
