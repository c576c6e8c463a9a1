package config

import "time"

// Default returns the configuration defaults. They match the production
// deployment: gpt-4o for generation, text-embedding-3-small (1536 dims) for
// embeddings, and the school_books Qdrant collection.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RateLimit:       10,
			RateBurst:       20,
		},
		LLM: LLMConfig{
			Model:   "gpt-4o",
			Timeout: 60 * time.Second,
		},
		Embedding: EmbeddingConfig{
			Model:      "text-embedding-3-small",
			Dimensions: 1536,
			Timeout:    30 * time.Second,
		},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6333,
			Collection: "school_books",
			Timeout:    30 * time.Second,
		},
		Agent: AgentConfig{
			MaxRewrites: 2,
			TopK:        5,
		},
		Ingest: IngestConfig{
			BooksDir:     "books",
			ChunkSize:    1000,
			ChunkOverlap: 200,
			BatchSize:    100,
			Concurrency:  4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
