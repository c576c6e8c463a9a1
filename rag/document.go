package rag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Metadata keys stored alongside every chunk.
const (
	MetaSourceFile = "source_file"
	MetaPage       = "page"
)

// PreviewLimit caps passage previews surfaced as citation metadata.
const PreviewLimit = 200

// Document is a chunk of source text with its embedding and metadata.
type Document struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Embedding []float64      `json:"embedding,omitempty"`
}

// SourceFile returns the source_file metadata value, or "Unknown".
func (d Document) SourceFile() string {
	if v, ok := d.Metadata[MetaSourceFile].(string); ok && v != "" {
		return v
	}
	return "Unknown"
}

// Page returns the page metadata value. JSON round-trips turn ints into
// float64, so both are accepted. Missing or negative pages report 0.
func (d Document) Page() int {
	switch v := d.Metadata[MetaPage].(type) {
	case int:
		if v >= 0 {
			return v
		}
	case float64:
		if v >= 0 {
			return int(v)
		}
	}
	return 0
}

// Passage is a retrieved chunk surfaced to the grader, the generator, and
// the caller as citation metadata. Scoped to one request.
type Passage struct {
	Source  string  `json:"source_file"`
	Page    int     `json:"page"`
	Text    string  `json:"-"`
	Preview string  `json:"content_preview"`
	Score   float64 `json:"-"`
}

// NewPassage builds a Passage from a retrieved document.
func NewPassage(doc Document, score float64) Passage {
	return Passage{
		Source:  doc.SourceFile(),
		Page:    doc.Page(),
		Text:    doc.Content,
		Preview: MakePreview(doc.Content),
		Score:   score,
	}
}

// MakePreview truncates content to PreviewLimit characters, appending an
// ellipsis marker when the content was longer.
func MakePreview(content string) string {
	if utf8.RuneCountInString(content) <= PreviewLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:PreviewLimit]) + "..."
}

// JoinPassages renders passages the way the grading and generation prompts
// consume them: a [Source, Page] header per passage, separated by rules.
func JoinPassages(passages []Passage) string {
	if len(passages) == 0 {
		return ""
	}
	parts := make([]string, len(passages))
	for i, p := range passages {
		parts[i] = fmt.Sprintf("[Source: %s, Page: %d]\n%s", p.Source, p.Page, p.Text)
	}
	return strings.Join(parts, "\n\n---\n\n")
}
