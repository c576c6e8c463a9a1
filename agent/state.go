// Package agent implements the RAG control graph: route a question to
// retrieval or a direct answer, grade retrieved passages, rewrite the query
// on an irrelevant grade, and generate a grounded answer. The rewrite loop
// is an explicit bounded loop, never recursion.
package agent

import (
	"github.com/karimelsayad/bookrag/rag"
	"github.com/karimelsayad/bookrag/types"
)

// RouteKind discriminates the routing decision.
type RouteKind string

const (
	// RouteRetrieve means the model requested the retrieval tool.
	RouteRetrieve RouteKind = "retrieve"

	// RouteDirect means the model answered without retrieval.
	RouteDirect RouteKind = "respond_directly"
)

// RouteDecision is the tagged result of one routing call. Exactly one of
// Answer (RouteDirect) or Query (RouteRetrieve) is meaningful.
type RouteDecision struct {
	Kind   RouteKind
	Answer string
	Query  string

	// ToolCall carries the raw invocation when Kind is RouteRetrieve, so the
	// tool-result turn can reference its ID.
	ToolCall types.ToolCall
}

// Verdict is the binary relevance grade for one retrieval attempt.
type Verdict string

const (
	VerdictRelevant   Verdict = "relevant"
	VerdictIrrelevant Verdict = "irrelevant"
)

// ConversationState is the ordered sequence of turns for one in-flight
// request, plus the passages retrieved by the most recent attempt. It is
// owned by exactly one request and never shared, so it needs no locking.
//
// Turn 0 is always the original user question and is never mutated;
// rewritten queries are appended as new user turns.
type ConversationState struct {
	turns   []types.Message
	sources []rag.Passage
}

// NewConversationState creates request-scoped state seeded with the
// original question as turn 0.
func NewConversationState(question string) *ConversationState {
	return &ConversationState{
		turns: []types.Message{types.NewUserMessage(question)},
	}
}

// OriginalQuestion returns the content of turn 0.
func (s *ConversationState) OriginalQuestion() string {
	return s.turns[0].Content
}

// Turns returns the conversation so far. The slice is a copy; appending to
// it does not affect the state.
func (s *ConversationState) Turns() []types.Message {
	out := make([]types.Message, len(s.turns))
	copy(out, s.turns)
	return out
}

// Append adds a turn to the conversation.
func (s *ConversationState) Append(msg types.Message) {
	s.turns = append(s.turns, msg)
}

// SetSources replaces the request's retrieved sources with the passages of
// the current attempt. Earlier attempts' passages are discarded so citation
// output always reflects the context the answer was generated from.
func (s *ConversationState) SetSources(passages []rag.Passage) {
	s.sources = passages
}

// Sources returns the passages retrieved by the most recent attempt.
func (s *ConversationState) Sources() []rag.Passage {
	return s.sources
}
