package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caresync-backend/internal/delivery/dto"
)

func TestChatHistoryTranscript(t *testing.T) {
	h := NewReviewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/chat_history?session_id=abc", nil)
	rec := httptest.NewRecorder()
	h.ChatHistory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body dto.ChatHistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.History) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(body.History))
	}
	if body.History[0].Role != "user" || body.History[1].Role != "assistant" {
		t.Errorf("expected alternating roles, got %q then %q", body.History[0].Role, body.History[1].Role)
	}
	if len(body.History[0].Parts) != 1 || body.History[0].Parts[0].Text == "" {
		t.Errorf("expected text in first turn, got %+v", body.History[0].Parts)
	}
}

func TestVerifyAndEditResponseAcknowledge(t *testing.T) {
	h := NewReviewHandler()

	endpoints := map[string]http.HandlerFunc{
		"/api/verify_response": h.VerifyResponse,
		"/api/edit_response":   h.EditResponse,
	}

	for path, fn := range endpoints {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"response":"looks right"}`))
		rec := httptest.NewRecorder()
		fn(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}

		var body dto.ReviewResponseResult
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: failed to decode body: %v", path, err)
		}
		if !body.Success {
			t.Errorf("%s: expected success true", path)
		}
	}
}

func TestReviewResponseRejectsBadJSON(t *testing.T) {
	h := NewReviewHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/verify_response", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.VerifyResponse(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
