package service

import (
	"context"
	"testing"

	"echoprep/config"
	"echoprep/internal/dto"
	"echoprep/internal/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineLLM(t *testing.T) GeminiLLMService {
	t.Helper()
	pm, err := prompts.NewManager()
	require.NoError(t, err)
	svc, err := NewGeminiLLMService(&config.Config{}, pm)
	require.NoError(t, err)
	return svc
}

func TestGeminiLLMService_OfflineQuestions(t *testing.T) {
	svc := newOfflineLLM(t)

	questions := svc.GenerateQuestions(context.Background(), "Software Engineer", "mid", "technical", "Go")
	require.Len(t, questions, 5)
	assert.Contains(t, questions[0], "Software Engineer")
	assert.Contains(t, questions[2], "Go")
}

func TestGeminiLLMService_OfflineFeedback(t *testing.T) {
	svc := newOfflineLLM(t)

	payload, err := svc.AnalyzePerformance(context.Background(), "Q: q\nA: a", "SE", "mid", "Go")
	require.NoError(t, err)
	assert.Equal(t, 70, payload.OverallScore)
	assert.NotEmpty(t, payload.Feedback.Clarity)
	assert.NotEmpty(t, payload.Strengths)
	assert.NotEmpty(t, payload.Recommendations)
}

func TestGeminiLLMService_OfflineSetupChat(t *testing.T) {
	svc := newOfflineLLM(t)

	reply, info := svc.SetupChat(context.Background(), "I want to practice interviews", nil)
	assert.NotEmpty(t, reply)
	assert.False(t, info.IsComplete())
}

func TestParseFeedbackJSON(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		payload, err := parseFeedbackJSON(`{"overall_score": 85, "strengths": ["clear"]}`)
		require.NoError(t, err)
		assert.Equal(t, 85, payload.OverallScore)
		assert.Equal(t, []string{"clear"}, payload.Strengths)
	})

	t.Run("markdown fences stripped", func(t *testing.T) {
		raw := "```json\n{\"overall_score\": 90}\n```"
		payload, err := parseFeedbackJSON(raw)
		require.NoError(t, err)
		assert.Equal(t, 90, payload.OverallScore)
	})

	t.Run("score clamped high", func(t *testing.T) {
		payload, err := parseFeedbackJSON(`{"overall_score": 150}`)
		require.NoError(t, err)
		assert.Equal(t, 100, payload.OverallScore)
	})

	t.Run("score clamped low", func(t *testing.T) {
		payload, err := parseFeedbackJSON(`{"overall_score": -10}`)
		require.NoError(t, err)
		assert.Equal(t, 0, payload.OverallScore)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseFeedbackJSON("sorry, I cannot help with that")
		assert.Error(t, err)
	})
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONObject("prose before {\"a\":1} prose after"))
	assert.Equal(t, "no braces here", extractJSONObject("no braces here"))
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions("Data Analyst", "entry", "SQL")
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.NotEmpty(t, q)
	}
}

func TestNormalizeSetupInfo(t *testing.T) {
	role := "Software Engineer"
	null := "null"
	blank := "  "

	info := normalizeSetupInfo(dto.SetupInfo{
		JobRole:         &role,
		ExperienceLevel: &null,
		InterviewType:   &blank,
		Skills:          nil,
	})

	require.NotNil(t, info.JobRole)
	assert.Equal(t, role, *info.JobRole)
	assert.Nil(t, info.ExperienceLevel, "literal \"null\" is discarded")
	assert.Nil(t, info.InterviewType, "whitespace-only values are discarded")
	assert.Nil(t, info.Skills)
}

func TestSetupInfoCompleteness(t *testing.T) {
	role, level, typ, skills := "SE", "mid", "technical", "Go"

	partial := dto.SetupInfo{JobRole: &role, ExperienceLevel: &level}
	assert.False(t, partial.IsComplete())

	full := partial.Merge(dto.SetupInfo{InterviewType: &typ, Skills: &skills})
	assert.True(t, full.IsComplete())

	// Merge keeps existing values.
	other := "PM"
	merged := full.Merge(dto.SetupInfo{JobRole: &other})
	assert.Equal(t, "SE", *merged.JobRole)
}
