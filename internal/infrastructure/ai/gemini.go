package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"caresync-backend/config"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	systemInstruction = "You are a medical assistant. Provide helpful and safe responses."

	// BlockedMessage replaces the provider output when the response was
	// safety-blocked.
	BlockedMessage = "Sorry, I cannot provide a response to that query due to safety concerns."

	// FallbackMessage is returned whenever the provider is disabled or the
	// call fails for any reason.
	FallbackMessage = "I apologize, but I'm having trouble generating a response right now. Please try again later."
)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
			Role  string `json:"role"`
		} `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// GeminiClient calls the Gemini generateContent REST endpoint. A client
// constructed without an API key is disabled and serves the fallback message
// for every call.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewGeminiClient(cfg config.AIConfig, log *logrus.Logger) *GeminiClient {
	if cfg.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set, AI responses will be degraded")
	}

	return &GeminiClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

func (c *GeminiClient) Generate(ctx context.Context, queryText, patientContext string) string {
	if c.apiKey == "" {
		return FallbackMessage
	}

	prompt := systemInstruction
	if patientContext != "" {
		prompt += "\nPatient context: " + patientContext
	}
	prompt += "\nUser query: " + queryText

	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		c.log.Warnf("Failed to encode Gemini request: %+v", err)
		return FallbackMessage
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Warnf("Failed to build Gemini request: %+v", err)
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Gemini request failed: %+v", err)
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("Gemini returned status %d", resp.StatusCode)
		return FallbackMessage
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warnf("Failed to decode Gemini response: %+v", err)
		return FallbackMessage
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return BlockedMessage
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		c.log.Warn("Gemini returned an empty response")
		return FallbackMessage
	}

	return result.Candidates[0].Content.Parts[0].Text
}
