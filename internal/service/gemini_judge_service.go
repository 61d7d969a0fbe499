package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/config"
)

// geminiJudgeService scores answers with a single call to the Gemini
// generateContent REST endpoint. Every upstream failure is mapped to a
// degraded (0, diagnostic feedback) result so one flaky vendor call never
// fails a submission.
type geminiJudgeService struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewGeminiJudgeService(cfg *config.Config) ScoringService {
	if cfg.Scoring.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Gemini scoring will fail until it is configured.")
	}
	return &geminiJudgeService{
		endpoint: cfg.Scoring.GeminiEndpoint,
		apiKey:   cfg.Scoring.GeminiApiKey,
		client:   &http.Client{Timeout: cfg.Scoring.GeminiTimeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// judgeVerdict is the strict two-field JSON object the prompt demands.
// encoding/json matches field names case-insensitively, which covers models
// replying with "Score"/"Feedback" capitalization.
type judgeVerdict struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

const parseFailureFeedback = "Could not process the AI response."

func buildGradingPrompt(questionText, answerText string) string {
	var b strings.Builder
	b.WriteString("You are a professional HR assistant. Your task is to grade a mock job-interview answer.\n\n")
	b.WriteString(fmt.Sprintf("QUESTION: %q\n", questionText))
	b.WriteString(fmt.Sprintf("CANDIDATE ANSWER: %q\n\n", answerText))
	b.WriteString("GRADING INSTRUCTIONS:\n")
	b.WriteString("1. Language check: if the answer is NOT in Bahasa Indonesia, give score 0 and feedback \"Mohon jawab menggunakan Bahasa Indonesia.\"\n")
	b.WriteString("2. Relevance check: if the answer is off-topic, incoherent or gibberish, give a score between 0 and 10.\n")
	b.WriteString("3. Quality: grade on clarity, the STAR method (Situation, Task, Action, Result) and professionalism.\n")
	b.WriteString("4. Do not be fooled by length. A long answer with little substance must score low.\n\n")
	b.WriteString("OUTPUT MUST BE JSON (no markdown):\n")
	b.WriteString("{\n  \"score\": (number 0-100),\n  \"feedback\": \"(one short suggestion, max 30 words)\"\n}\n")
	return b.String()
}

func (s *geminiJudgeService) Score(ctx context.Context, questionText, answerText string) (float64, string, error) {
	if s.apiKey == "" {
		return 0, "", ErrCredentialMissing
	}
	if strings.TrimSpace(questionText) == "" || strings.TrimSpace(answerText) == "" {
		return 0, "Both a question and an answer are required for scoring.", nil
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildGradingPrompt(questionText, answerText)}}}},
	})
	if err != nil {
		return 0, parseFailureFeedback, nil
	}

	resp, err := s.post(ctx, body)
	if err != nil {
		log.Error().Err(err).Msg("Gemini request failed")
		return 0, fmt.Sprintf("AI error: %s", err.Error()), nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read Gemini response body")
		return 0, fmt.Sprintf("AI error: %s", err.Error()), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Msg("Gemini returned non-success status")
		return 0, fmt.Sprintf("AI error: %d - %s", resp.StatusCode, string(raw)), nil
	}

	verdict, ok := parseVerdict(raw)
	if !ok {
		log.Warn().Str("body", string(raw)).Msg("Could not parse Gemini response")
		return 0, parseFailureFeedback, nil
	}

	feedback := strings.TrimSpace(verdict.Feedback)
	if feedback == "" {
		feedback = parseFailureFeedback
	}
	return clampScore(verdict.Score), feedback, nil
}

// post sends the request, retrying once on transport errors. HTTP error
// statuses are responses, not transport failures, and are never retried.
func (s *geminiJudgeService) post(ctx context.Context, body []byte) (*http.Response, error) {
	var resp *http.Response
	var err error
	url := fmt.Sprintf("%s?key=%s", s.endpoint, s.apiKey)
	for attempt := 0; attempt < 2; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err = s.client.Do(req)
		if err == nil {
			return resp, nil
		}
	}
	return nil, err
}

func parseVerdict(raw []byte) (judgeVerdict, bool) {
	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return judgeVerdict{}, false
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return judgeVerdict{}, false
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		return judgeVerdict{}, false
	}
	return verdict, true
}
