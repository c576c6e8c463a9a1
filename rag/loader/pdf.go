package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/karimelsayad/bookrag/rag"
)

// PDFLoader extracts text from PDF files, one Document per page, so page
// numbers survive into citation metadata.
type PDFLoader struct{}

// NewPDFLoader creates a PDFLoader.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// Load opens a PDF and returns one Document per non-empty page. Pages are
// numbered from 1.
func (l *PDFLoader) Load(ctx context.Context, source string) ([]rag.Document, error) {
	f, reader, err := pdf.Open(source)
	if err != nil {
		return nil, fmt.Errorf("pdf loader: open %q: %w", source, err)
	}
	defer f.Close()

	name := filepath.Base(source)
	total := reader.NumPage()

	docs := make([]rag.Document, 0, total)
	for pageNum := 1; pageNum <= total; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the whole book.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		docs = append(docs, rag.Document{
			ID:      fmt.Sprintf("%s#page=%d", source, pageNum),
			Content: text,
			Metadata: map[string]any{
				rag.MetaSourceFile: name,
				rag.MetaPage:       pageNum,
			},
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("pdf loader: no text extracted from %q", source)
	}
	return docs, nil
}

// SupportedTypes returns the extensions handled by PDFLoader.
func (l *PDFLoader) SupportedTypes() []string {
	return []string{".pdf"}
}
