package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HuggingFaceProvider struct {
	apiToken string
	baseURL  string
	model    string
	client   *http.Client
}

type embeddingRequest struct {
	Inputs []string `json:"inputs"`
}

func NewHuggingFaceProvider(apiToken, model string) *HuggingFaceProvider {
	if model == "" {
		model = "sentence-transformers/all-MiniLM-L6-v2" // 384 dimensions
	}
	return &HuggingFaceProvider{
		apiToken: apiToken,
		baseURL:  "https://router.huggingface.co/hf-inference/models",
		model:    model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *HuggingFaceProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	// The feature-extraction pipeline expects an array of inputs. We wrap
	// the single text.
	reqBody := embeddingRequest{
		Inputs: []string{text},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/pipeline/feature-extraction", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.apiToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiToken))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	// Response shape: one vector per input text.
	var vectors [][]float32
	if err := json.Unmarshal(bodyBytes, &vectors); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("empty embedding from huggingface api")
	}

	return vectors[0], nil
}
