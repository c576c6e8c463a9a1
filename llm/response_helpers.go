package llm

import "github.com/karimelsayad/bookrag/types"

// FirstChoiceText returns the text content of the first choice, or "" when
// the response carries no choices.
func FirstChoiceText(resp *ChatResponse) string {
	if resp == nil || len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}

// FirstToolCall returns the first tool call of the first choice, if any.
func FirstToolCall(resp *ChatResponse) (types.ToolCall, bool) {
	if resp == nil || len(resp.Choices) == 0 {
		return types.ToolCall{}, false
	}
	calls := resp.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return types.ToolCall{}, false
	}
	return calls[0], true
}
