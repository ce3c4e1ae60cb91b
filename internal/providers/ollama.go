package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Ollama talks to the native Ollama generate API. Streaming is always
// disabled so each call returns the complete generation in one payload.
type Ollama struct {
	model    string
	endpoint string
	client   *http.Client
}

// NewOllama creates an Ollama client for the given model and generate
// endpoint URL, with a fixed per-call timeout.
func NewOllama(model, endpoint string, timeout time.Duration) *Ollama {
	return &Ollama{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (o *Ollama) Name() string { return "ollama" }

// Generate sends prompt to the endpoint and returns the generated text.
// An absent response field yields an empty string, not an error.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return "", &InferenceError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", &InferenceError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", &InferenceError{StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &InferenceError{Err: fmt.Errorf("parsing response: %w", err)}
	}

	return result.Response, nil
}

// ListModels returns the model names the endpoint currently serves,
// via the tags API of the same host as the generate endpoint.
func (o *Ollama) ListModels(ctx context.Context) ([]string, error) {
	tagsURL, err := o.tagsURL()
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "GET", tagsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, &InferenceError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &InferenceError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &InferenceError{StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	var result tagsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &InferenceError{Err: fmt.Errorf("parsing response: %w", err)}
	}

	names := make([]string, 0, len(result.Models))
	for _, m := range result.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func (o *Ollama) tagsURL() (string, error) {
	u, err := url.Parse(o.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint URL: %w", err)
	}
	// /api/generate and /api/tags live on the same host.
	u.Path = "/api/tags"
	u.RawQuery = ""
	return u.String(), nil
}
