package rag

import (
	"context"
	"fmt"
	"strings"

	"hybrid-rag-chat/internal/pkg/logger"
	"hybrid-rag-chat/pkg/llm"
	"hybrid-rag-chat/pkg/retrieval"
)

// ContextRetriever is what the chain needs from the hybrid retriever.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, opts retrieval.Options) []retrieval.Document
}

const systemPromptTemplate = `Your name is Mirae, an assistant for question-answering tasks.
Use the provided context to answer the question as accurately and concisely as possible.
Do not reference or mention the existence of any context in your response.
Simply respond with the answer, based solely on the information given.
If the answer is not available in the context, say you don't know.
Do not provide explanations or assumptions beyond the given information.

Context:
%s`

const contextSeparator = "\n\n---\n\n"

// Chain drives one question through retrieval, prompt assembly and answer
// synthesis.
type Chain struct {
	retriever ContextRetriever
	provider  llm.LLMProvider
	opts      retrieval.Options
	logger    logger.ILogger
}

func NewChain(retriever ContextRetriever, provider llm.LLMProvider, opts retrieval.Options, log logger.ILogger) *Chain {
	return &Chain{
		retriever: retriever,
		provider:  provider,
		opts:      opts,
		logger:    log,
	}
}

// Answer retrieves hybrid context for the question and synthesizes a
// grounded answer. Retrieval failures have already degraded to empty context
// by this point; an empty context still produces one LLM call, which is
// instructed to admit ignorance. LLM failures propagate to the caller.
func (c *Chain) Answer(ctx context.Context, question string) (string, error) {
	docs := c.retriever.Retrieve(ctx, question, c.opts)

	messages := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(systemPromptTemplate, formatContext(docs))},
		{Role: "user", Content: fmt.Sprintf("Question: %s", question)},
	}

	answer, err := c.provider.Chat(ctx, messages,
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		return "", fmt.Errorf("answer synthesis: %w", err)
	}

	c.logger.Info("rag", "answer synthesized", map[string]interface{}{
		"context_pieces": len(docs),
	})

	return strings.TrimSpace(answer), nil
}

// formatContext renders documents as numbered blocks tagged with their
// source. An empty document list renders as an empty string.
func formatContext(docs []retrieval.Document) string {
	if len(docs) == 0 {
		return ""
	}

	blocks := make([]string, len(docs))
	for i, doc := range docs {
		source := doc.Source
		if source == "" {
			source = retrieval.SourceVector
		}
		blocks[i] = fmt.Sprintf("Context Piece %d (Source: %s):\n%s", i+1, source, doc.Content)
	}
	return strings.Join(blocks, contextSeparator)
}
