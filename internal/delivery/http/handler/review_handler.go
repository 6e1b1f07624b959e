package handler

import (
	"encoding/json"
	"net/http"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/pkg/response"
)

// ReviewHandler serves the clinician review screen. The transcript endpoint
// returns a demo conversation and the verify/edit endpoints acknowledge the
// submission without persisting it yet.
type ReviewHandler struct{}

func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{}
}

var demoHistory = []dto.ChatTurn{
	{
		Role:  "user",
		Parts: []dto.ChatPart{{Text: "I've been having severe headaches lately, what could it be?"}},
	},
	{
		Role:  "assistant",
		Parts: []dto.ChatPart{{Text: "Headaches can be caused by various factors including stress, dehydration, lack of sleep, eye strain, or more serious conditions. If the headaches are severe or persistent, it's important to consult with a healthcare professional for proper diagnosis. In the meantime, ensure you're staying hydrated, getting adequate rest, and managing stress levels."}},
	},
	{
		Role:  "user",
		Parts: []dto.ChatPart{{Text: "What medications can help with migraines?"}},
	},
	{
		Role:  "assistant",
		Parts: []dto.ChatPart{{Text: "Common medications for migraines include over-the-counter pain relievers like ibuprofen or aspirin, triptans (such as sumatriptan), anti-nausea medications, and preventive medications for those with frequent migraines. It's important to consult with a healthcare provider before starting any medication regimen for proper diagnosis and personalized treatment."}},
	},
}

// ChatHistory returns the review transcript. The session id parameter is
// accepted but the transcript is not yet keyed by it.
func (h *ReviewHandler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	_ = r.URL.Query().Get("session_id")

	response.JSON(w, http.StatusOK, dto.ChatHistoryResponse{History: demoHistory})
}

func (h *ReviewHandler) VerifyResponse(w http.ResponseWriter, r *http.Request) {
	h.acknowledge(w, r)
}

func (h *ReviewHandler) EditResponse(w http.ResponseWriter, r *http.Request) {
	h.acknowledge(w, r)
}

func (h *ReviewHandler) acknowledge(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	response.JSON(w, http.StatusOK, dto.ReviewResponseResult{Success: true})
}
