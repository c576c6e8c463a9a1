package main

import (
	"go.uber.org/zap"

	"github.com/karimelsayad/bookrag/agent"
	"github.com/karimelsayad/bookrag/config"
	"github.com/karimelsayad/bookrag/llm/embedding"
	"github.com/karimelsayad/bookrag/llm/providers/openai"
	"github.com/karimelsayad/bookrag/rag"
)

// pipeline bundles the collaborators every command needs: the model
// provider, the embedder, the vector store and the assembled agent.
type pipeline struct {
	provider  *openai.Provider
	embedder  *embedding.OpenAIProvider
	store     *rag.QdrantStore
	retriever *rag.Retriever
	agent     *agent.Agent
}

// newPipeline wires the question answering pipeline from config. The same
// embedder serves ingestion and queries so vector sizes always match.
func newPipeline(cfg *config.Config, logger *zap.Logger) *pipeline {
	provider := openai.New(openai.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		Organization: cfg.LLM.Organization,
		Timeout:      cfg.LLM.Timeout,
	}, logger)

	embedder := embedding.NewOpenAIProvider(embedding.OpenAIConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Timeout:    cfg.Embedding.Timeout,
	})

	store := rag.NewQdrantStore(rag.QdrantConfig{
		Host:       cfg.Qdrant.Host,
		Port:       cfg.Qdrant.Port,
		BaseURL:    cfg.Qdrant.BaseURL,
		APIKey:     cfg.Qdrant.APIKey,
		Collection: cfg.Qdrant.Collection,
		Timeout:    cfg.Qdrant.Timeout,
	}, logger)

	retriever := rag.NewRetriever(embedder, store, logger)

	model := cfg.LLM.Model
	ragAgent := agent.New(
		agent.Config{MaxRewrites: cfg.Agent.MaxRewrites, TopK: cfg.Agent.TopK},
		agent.NewRouter(provider, model, logger),
		retriever,
		agent.NewGrader(provider, model, logger),
		agent.NewRewriter(provider, model, logger),
		agent.NewGenerator(provider, model, logger),
		logger,
	)

	return &pipeline{
		provider:  provider,
		embedder:  embedder,
		store:     store,
		retriever: retriever,
		agent:     ragAgent,
	}
}
