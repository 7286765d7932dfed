package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"echoprep/config"
	"echoprep/internal/dto"
	"echoprep/internal/prompts"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	maxQuestions   = 7
	llmCallTimeout = 30 * time.Second
)

// GeminiLLMService generates interview questions and analyzes completed
// transcripts. Every method has a deterministic offline fallback: a nil
// client (no API key), a provider error, or a timeout all degrade to fixed
// content instead of failing the caller.
type GeminiLLMService interface {
	GenerateQuestions(ctx context.Context, jobRole, experienceLevel, interviewType, skills string) []string
	AnalyzePerformance(ctx context.Context, transcript, jobRole, experienceLevel, skills string) (dto.FeedbackPayload, error)
	SetupChat(ctx context.Context, message string, history []string) (string, dto.SetupInfo)
}

type geminiLLMService struct {
	client  *genai.GenerativeModel
	prompts *prompts.Manager
	cfg     *config.Config
}

func NewGeminiLLMService(cfg *config.Config, pm *prompts.Manager) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Falling back to built-in question templates and neutral feedback.")
		return &geminiLLMService{cfg: cfg, prompts: pm, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{client: model, prompts: pm, cfg: cfg}, nil
}

// GenerateQuestions returns the ordered question list for an interview.
// Failures never propagate: the fixed template questions are returned instead.
func (s *geminiLLMService) GenerateQuestions(ctx context.Context, jobRole, experienceLevel, interviewType, skills string) []string {
	fallback := FallbackQuestions(jobRole, experienceLevel, skills)
	if s.client == nil {
		return fallback
	}

	prompt, err := s.prompts.Build("question_generation", map[string]string{
		"Role":   jobRole,
		"Level":  experienceLevel,
		"Type":   interviewType,
		"Skills": skills,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to build question generation prompt")
		return fallback
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("jobRole", jobRole).Msg("Gemini question generation failed, using fallback questions")
		return fallback
	}

	var questions []string
	for _, line := range strings.Split(text, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return fallback
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

// AnalyzePerformance scores a completed transcript. The returned error is
// informational only: on any failure the deterministic neutral payload is
// returned alongside it, so the caller can always persist something.
func (s *geminiLLMService) AnalyzePerformance(ctx context.Context, transcript, jobRole, experienceLevel, skills string) (dto.FeedbackPayload, error) {
	if s.client == nil {
		return FallbackFeedback(), nil
	}

	prompt, err := s.prompts.Build("performance_analysis", map[string]string{
		"Role":       jobRole,
		"Level":      experienceLevel,
		"Skills":     skills,
		"Transcript": transcript,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to build performance analysis prompt")
		return FallbackFeedback(), err
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("jobRole", jobRole).Msg("Gemini performance analysis failed, using fallback feedback")
		return FallbackFeedback(), err
	}

	payload, err := parseFeedbackJSON(text)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text).Msg("Failed to parse feedback JSON from Gemini response")
		return FallbackFeedback(), err
	}
	return payload, nil
}

// SetupChat runs one turn of the conversational setup assistant. Without a
// configured client it falls back to simple keyword heuristics.
func (s *geminiLLMService) SetupChat(ctx context.Context, message string, history []string) (string, dto.SetupInfo) {
	if s.client == nil {
		return ruleBasedSetupReply(message)
	}

	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	prompt, err := s.prompts.Build("setup_assistant", map[string]string{
		"Message": message,
		"History": strings.Join(history, "\n"),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to build setup assistant prompt")
		return ruleBasedSetupReply(message)
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Gemini setup assistant failed, using rule-based reply")
		return ruleBasedSetupReply(message)
	}

	var parsed struct {
		Response      string        `json:"response"`
		ExtractedInfo dto.SetupInfo `json:"extracted_info"`
	}
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &parsed); err != nil || parsed.Response == "" {
		return text, dto.SetupInfo{}
	}
	return parsed.Response, normalizeSetupInfo(parsed.ExtractedInfo)
}

func (s *geminiLLMService) generate(ctx context.Context, prompt string) (string, error) {
	reqID := uuid.NewString()
	ctx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()

	log.Info().Str("requestID", reqID).Int("promptLen", len(prompt)).Msg("Calling Gemini API")
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request %s failed: %w", reqID, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini request %s returned no content", reqID)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini request %s returned no text content", reqID)
	}
	return sb.String(), nil
}

// parseFeedbackJSON decodes the analyzer's JSON, tolerating markdown code
// fences around the object, and clamps the score to [0, 100].
func parseFeedbackJSON(raw string) (dto.FeedbackPayload, error) {
	var payload dto.FeedbackPayload
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &payload); err != nil {
		return dto.FeedbackPayload{}, fmt.Errorf("feedback response is not valid JSON: %w", err)
	}
	if payload.OverallScore > 100 {
		payload.OverallScore = 100
	}
	if payload.OverallScore < 0 {
		payload.OverallScore = 0
	}
	return payload, nil
}

// extractJSONObject strips everything outside the outermost braces, which
// removes ```json fences and any prose the model wrapped around the object.
func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

// FallbackQuestions is the deterministic five-question template used when the
// AI provider is unavailable or unconfigured.
func FallbackQuestions(jobRole, experienceLevel, skills string) []string {
	return []string{
		fmt.Sprintf("Tell me about yourself and your experience in %s.", jobRole),
		fmt.Sprintf("What interests you most about working as a %s %s?", experienceLevel, jobRole),
		fmt.Sprintf("How would you approach a challenging project involving %s?", skills),
		"Describe a time when you had to learn a new technology quickly.",
		"What are your career goals for the next 3-5 years?",
	}
}

// FallbackFeedback is the deterministic neutral payload persisted when the
// analyzer fails. The transcript itself is never dropped.
func FallbackFeedback() dto.FeedbackPayload {
	return dto.FeedbackPayload{
		OverallScore: 70,
		Feedback: dto.FeedbackDetails{
			Clarity:           "Automated analysis was unavailable for this session.",
			TechnicalAccuracy: "Please review your responses manually.",
			ProblemSolving:    "Consider practicing with more examples.",
			Confidence:        "Continue building confidence through practice.",
		},
		Strengths:           []string{"Completed the interview"},
		AreasForImprovement: []string{"Continue practicing"},
		Recommendations: []string{
			"Keep practicing interview skills",
			"Review common interview questions",
		},
	}
}

func ruleBasedSetupReply(message string) (string, dto.SetupInfo) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "job") || strings.Contains(lower, "role"):
		var info dto.SetupInfo
		if len(strings.Fields(message)) <= 3 {
			role := strings.TrimSpace(message)
			info.JobRole = &role
		}
		return "What specific job role are you preparing for? For example: Software Engineer, Data Analyst, Product Manager.", info
	case strings.Contains(lower, "experience") || strings.Contains(lower, "level"):
		var info dto.SetupInfo
		for _, level := range []string{"entry", "mid", "senior"} {
			if strings.Contains(lower, level) {
				l := strings.TrimSpace(message)
				info.ExperienceLevel = &l
				break
			}
		}
		return "What's your experience level? Please choose: Entry Level, Mid Level, or Senior Level.", info
	default:
		return "I'd love to help you set up your mock interview! Let's start with the job role you're preparing for.", dto.SetupInfo{}
	}
}

// normalizeSetupInfo discards pointer fields the model filled with the literal
// strings "null" or "".
func normalizeSetupInfo(info dto.SetupInfo) dto.SetupInfo {
	clean := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		if v == "" || strings.EqualFold(v, "null") {
			return nil
		}
		return &v
	}
	info.JobRole = clean(info.JobRole)
	info.ExperienceLevel = clean(info.ExperienceLevel)
	info.InterviewType = clean(info.InterviewType)
	info.Skills = clean(info.Skills)
	return info
}
