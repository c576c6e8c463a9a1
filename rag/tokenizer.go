package rag

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// TiktokenTokenizer counts tokens with the encoding of a given model.
// Falls back to a character estimate if encoding ever fails.
type TiktokenTokenizer struct {
	encoding *tiktoken.Tiktoken
	logger   *zap.Logger
}

// NewTiktokenTokenizer creates a tokenizer for the given model
// (e.g. "gpt-4o").
func NewTiktokenTokenizer(model string, logger *zap.Logger) (*TiktokenTokenizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("create tokenizer for model %q: %w", model, err)
	}
	return &TiktokenTokenizer{encoding: enc, logger: logger}, nil
}

// CountTokens returns the token count of text.
func (t *TiktokenTokenizer) CountTokens(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}
