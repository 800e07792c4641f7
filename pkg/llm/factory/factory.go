package factory

import (
	"fmt"

	"hybrid-rag-chat/pkg/llm"
	"hybrid-rag-chat/pkg/llm/openrouter"
)

func NewLLMProvider(providerType, apiKey, baseURL, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "openrouter":
		return openrouter.NewOpenRouterProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
