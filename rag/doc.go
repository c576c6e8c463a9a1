// Package rag provides the retrieval side of the pipeline: document and
// passage types, vector stores (in-memory and Qdrant), chunking, the
// knowledge retriever, and the ingestion pipeline that populates the
// collection from textbook PDFs.
package rag
