package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimelsayad/bookrag/rag/loader"
)

func TestWriteSeedBook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), seedBookName)
	require.NoError(t, writeSeedBook(path))

	docs, err := loader.NewPDFLoader().Load(context.Background(), path)
	require.NoError(t, err)

	// Title page plus at least one page per chapter. Long chapters may
	// overflow onto extra pages.
	require.GreaterOrEqual(t, len(docs), len(seedChapters)+1)

	var all strings.Builder
	for _, doc := range docs {
		assert.Equal(t, seedBookName, doc.SourceFile())
		all.WriteString(doc.Content)
	}
	assert.Contains(t, all.String(), "CAP theorem")
	assert.Contains(t, all.String(), "Eric Brewer")
	assert.Contains(t, all.String(), "Eventual consistency")
}
