package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimelsayad/bookrag/testutil/mocks"
	"github.com/karimelsayad/bookrag/types"
)

func TestGrader_Verdicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reply   string
		verdict Verdict
	}{
		{"relevant", `{"binary_score":"yes"}`, VerdictRelevant},
		{"irrelevant", `{"binary_score":"no"}`, VerdictIrrelevant},
		{"case insensitive", `{"binary_score":"Yes"}`, VerdictRelevant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			provider := mocks.NewProvider(mocks.TextReply(tt.reply))
			grader := NewGrader(provider, "gpt-4o", nil)

			verdict, err := grader.Grade(context.Background(), "question", "context")
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, verdict)
		})
	}
}

func TestGrader_ConstrainsOutputSchema(t *testing.T) {
	t.Parallel()

	provider := mocks.NewProvider(mocks.TextReply(`{"binary_score":"yes"}`))
	grader := NewGrader(provider, "gpt-4o", nil)

	_, err := grader.Grade(context.Background(), "q", "ctx")
	require.NoError(t, err)

	calls := provider.Calls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].ResponseFormat)
	assert.Equal(t, "json_schema", calls[0].ResponseFormat.Type)
	assert.Equal(t, "grade_documents", calls[0].ResponseFormat.JSONSchema.Name)
	assert.Contains(t, calls[0].Messages[0].Content, "q")
	assert.Contains(t, calls[0].Messages[0].Content, "ctx")
}

func TestGrader_MalformedOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "maybe"},
		{"score outside contract", `{"binary_score":"probably"}`},
		{"empty score", `{"binary_score":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			grader := NewGrader(mocks.NewProvider(mocks.TextReply(tt.reply)), "gpt-4o", nil)

			_, err := grader.Grade(context.Background(), "q", "ctx")
			require.Error(t, err)
			assert.Equal(t, types.ErrMalformedModelOutput, types.GetErrorCode(err))
		})
	}
}
