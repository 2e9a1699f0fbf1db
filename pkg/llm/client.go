// Package llm talks to the Google Gemini API: prompt compilation, the raw
// HTTP client, and the retry/validation orchestration around plan
// generation.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	// GeminiEndpointFormat is the generateContent endpoint, parameterized
	// by model name.
	GeminiEndpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	// GeminiModel is the default model.
	GeminiModel = "gemini-2.5-pro"
)

// Client is a Gemini API client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new Gemini API client.
func NewClient(apiKey, model string) (client *Client) {
	if model == "" {
		model = GeminiModel
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: fmt.Sprintf(GeminiEndpointFormat, model),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	return client
}

// ModelName returns the model this client targets.
func (c *Client) ModelName() (model string) {
	model = c.model
	return model
}

// Complete sends a single-turn prompt and returns the model's text.
func (c *Client) Complete(ctx context.Context, prompt string) (responseText string, err error) {
	// Build request
	geminiReq := GeminiRequest{
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      0.3,
			ResponseMIMEType: "application/json",
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(geminiReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	// Create HTTP request
	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	// Set headers
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)

	// Send request
	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	// Read response body
	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		err = &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		return responseText, err
	}

	// Parse Gemini response
	var geminiResp GeminiResponse
	err = json.Unmarshal(respBody, &geminiResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse Gemini response: %s", string(respBody))
		return responseText, err
	}

	// Extract text content
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		err = errors.New("no content in Gemini response")
		return responseText, err
	}

	responseText = geminiResp.Candidates[0].Content.Parts[0].Text

	return responseText, err
}

// stripMarkdownCodeFences removes markdown code fences from JSON responses.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = text

	// Check if text starts with ```json and ends with ```
	if len(cleaned) > 7 && cleaned[:7] == "```json" {
		// Find first newline after ```json
		start := 7
		for start < len(cleaned) && cleaned[start] != '\n' {
			start++
		}
		start++ // skip the newline

		// Find last ```
		end := len(cleaned)
		if end > 3 && cleaned[end-3:] == "```" {
			end -= 3
		}

		// Remove trailing whitespace before ```
		for end > 0 && (cleaned[end-1] == '\n' || cleaned[end-1] == ' ' || cleaned[end-1] == '\r') {
			end--
		}

		cleaned = cleaned[start:end]
	}

	return cleaned
}
