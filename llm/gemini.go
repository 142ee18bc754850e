package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clementus360/task-coach/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// DefaultModels is the candidate list tried in priority order.
var DefaultModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
}

const (
	generationTemperature = 0.7
	generationMaxTokens   = 800
)

// Client calls the Gemini REST API, walking an ordered list of candidate
// models until one produces text.
type Client struct {
	apiKey     string
	baseURL    string
	models     []string
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	baseURL := cfg.GeminiBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	models := cfg.GeminiModels
	if len(models) == 0 {
		models = DefaultModels
	}

	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		baseURL: baseURL,
		models:  models,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate tries each candidate model in order and returns the first
// non-empty generated text. When every candidate fails, the returned
// error wraps the last failure seen.
func (c *Client) Generate(prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is empty")
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.generateOnce(model, prompt)
		if err != nil {
			config.Logger.Warnf("Generation with %s failed, trying next candidate: %v", model, err)
			lastErr = err
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("all candidate models exhausted: %w", lastErr)
}

func (c *Client) generateOnce(model, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxTokens,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerationError{Model: model, Kind: ErrKindBackend, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		kind, msg := classifyStatus(resp.StatusCode)
		return "", &GenerationError{Model: model, Kind: kind, StatusCode: resp.StatusCode, Message: msg}
	}

	var res geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", &GenerationError{Model: model, Kind: ErrKindBackend, Message: "malformed response payload"}
	}

	text := extractText(res)
	if text == "" {
		return "", &GenerationError{Model: model, Kind: ErrKindBackend, Message: "empty response payload"}
	}

	return text, nil
}

func extractText(res geminiResponse) string {
	if len(res.Candidates) == 0 {
		return ""
	}
	parts := res.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0].Text)
}
