package agent

import "fmt"

// Prompts are pure functions from structured inputs to prompt text, so they
// can be unit-tested without a model call.

const routerSystemPrompt = `You are an educational assistant for students. ` +
	`For general greetings or off-topic questions, respond directly. ` +
	`For educational questions about school subjects (math, science, history, etc.), ` +
	`use the retrieve_from_books tool to look up the answer in the school books.`

const gradePromptTemplate = `You are a grader assessing relevance of retrieved documents to a student's question.

Here is the retrieved document:
%s

Here is the student's question: %s

If the document contains information that could help answer the student's question (keywords, concepts, formulas, explanations related to the topic), grade it as relevant.

Give a binary score 'yes' or 'no' to indicate whether the document is relevant to the question.`

// GradePrompt builds the relevance classification prompt.
func GradePrompt(question, context string) string {
	return fmt.Sprintf(gradePromptTemplate, context, question)
}

const rewritePromptTemplate = `You are helping to improve a student's question for better search results.

The previous search didn't return relevant results. Please rewrite the question to be more specific or use different terminology that might be found in school textbooks.

Original question: %s

Rewrite the question to improve search results (keep it focused on the educational topic):`

// RewritePrompt builds the query reformulation prompt. It always takes the
// original question, never a previously rewritten one.
func RewritePrompt(question string) string {
	return fmt.Sprintf(rewritePromptTemplate, question)
}

const generatePromptTemplate = `You are a helpful educational assistant for students. Use the following information from school books to answer the student's question.

Instructions:
- Provide a clear, educational explanation suitable for students
- If the context includes formulas or equations, explain them step by step
- If you're not sure about something, say so
- Keep the answer focused and concise

Question: %s

Context from books:
%s

Answer:`

// GeneratePrompt builds the answer synthesis prompt.
func GeneratePrompt(question, context string) string {
	return fmt.Sprintf(generatePromptTemplate, question, context)
}

const lowConfidencePromptTemplate = `You are a helpful educational assistant for students. Repeated searches of the school books did not find clearly relevant material for the student's question.

Instructions:
- Start by stating that the available books do not seem to cover this topic well
- If the context below is at all useful, answer cautiously from it
- Do not invent facts that are not in the context
- Suggest how the student might rephrase or where else to look

Question: %s

Context from books (low relevance):
%s

Answer:`

// LowConfidencePrompt builds the best-effort prompt used when the rewrite
// budget is exhausted without a relevant grade. The answer must state up
// front that the corpus coverage is insufficient.
func LowConfidencePrompt(question, context string) string {
	return fmt.Sprintf(lowConfidencePromptTemplate, question, context)
}
