package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/rag"
	"github.com/karimelsayad/bookrag/rag/loader"
)

func runIngest(args []string) {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	booksDir := fs.String("books", "", "Directory of books to ingest (overrides config)")
	cfg := loadConfig(fs, args)
	if *booksDir != "" {
		cfg.Ingest.BooksDir = *booksDir
	}

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	p := newPipeline(cfg, logger)

	ctx := context.Background()
	docs, err := loader.NewRegistry().LoadDir(ctx, cfg.Ingest.BooksDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load books from %s: %v\n", cfg.Ingest.BooksDir, err)
		os.Exit(1)
	}

	tokenizer, err := rag.NewTiktokenTokenizer(cfg.LLM.Model, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init tokenizer: %v\n", err)
		os.Exit(1)
	}

	chunker := rag.NewDocumentChunker(rag.ChunkingConfig{
		ChunkSize:    cfg.Ingest.ChunkSize,
		ChunkOverlap: cfg.Ingest.ChunkOverlap,
		MinChunkSize: rag.DefaultChunkingConfig().MinChunkSize,
	}, tokenizer, logger)

	ingestor := rag.NewIngestor(rag.IngestConfig{
		BatchSize:   cfg.Ingest.BatchSize,
		Concurrency: cfg.Ingest.Concurrency,
	}, chunker, p.embedder, p.store, logger)

	start := time.Now()
	stats, err := ingestor.Ingest(ctx, docs)
	if err != nil {
		logger.Error("ingestion failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Ingestion failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ingested %d documents into %q\n", stats.Documents, cfg.Qdrant.Collection)
	fmt.Printf("  Chunks:   %d\n", stats.Chunks)
	fmt.Printf("  Tokens:   %d\n", stats.Tokens)
	fmt.Printf("  Duration: %s\n", time.Since(start).Round(time.Millisecond))
}
