package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"caresync-backend/config"

	"github.com/sirupsen/logrus"
)

func testClient(t *testing.T, apiKey, baseURL string) *GeminiClient {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	client := NewGeminiClient(config.AIConfig{
		APIKey:  apiKey,
		Model:   "gemini-1.5-flash-latest",
		Timeout: 5 * time.Second,
	}, log)
	if baseURL != "" {
		client.baseURL = baseURL
	}
	return client
}

func TestGenerateDisabledWithoutKey(t *testing.T) {
	client := testClient(t, "", "")

	got := client.Generate(context.Background(), "hello", "")
	if got != FallbackMessage {
		t.Errorf("expected fallback message, got %q", got)
	}
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	var seenPath string
	var seenPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Contents) == 1 && len(req.Contents[0].Parts) == 1 {
			seenPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Stay hydrated."}],"role":"model"}}]}`)
	}))
	defer server.Close()

	client := testClient(t, "test-key", server.URL)
	got := client.Generate(context.Background(), "I feel dizzy", "Patient: Asha Rao, Female, Age: 35.")

	if got != "Stay hydrated." {
		t.Errorf("expected candidate text, got %q", got)
	}
	if !strings.Contains(seenPath, "gemini-1.5-flash-latest") {
		t.Errorf("expected model in path, got %q", seenPath)
	}
	if !strings.Contains(seenPrompt, "I feel dizzy") {
		t.Errorf("expected query in prompt, got %q", seenPrompt)
	}
	if !strings.Contains(seenPrompt, "Patient context: Patient: Asha Rao") {
		t.Errorf("expected patient context in prompt, got %q", seenPrompt)
	}
	if !strings.Contains(seenPrompt, "medical assistant") {
		t.Errorf("expected system instruction in prompt, got %q", seenPrompt)
	}
}

func TestGenerateBlockedPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	}))
	defer server.Close()

	client := testClient(t, "test-key", server.URL)
	got := client.Generate(context.Background(), "something unsafe", "")
	if got != BlockedMessage {
		t.Errorf("expected blocked message, got %q", got)
	}
}

func TestGenerateProviderErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"candidates": [`)
		}},
		{"empty candidates", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"candidates":[]}`)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := testClient(t, "test-key", server.URL)
			if got := client.Generate(context.Background(), "hello", ""); got != FallbackMessage {
				t.Errorf("expected fallback message, got %q", got)
			}
		})
	}
}

func TestGenerateUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(t, "test-key", server.URL)
	if got := client.Generate(context.Background(), "hello", ""); got != FallbackMessage {
		t.Errorf("expected fallback message, got %q", got)
	}
}
