package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"echoprep/config"
	"echoprep/internal/dto"
	"echoprep/internal/progression"
	"echoprep/internal/prompts"
	"echoprep/internal/repository"
	"echoprep/internal/service"
	"echoprep/internal/testhelpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full stack against an in-memory database. The LLM
// and speech services run without credentials, so every AI call takes its
// deterministic fallback path.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret"}
	db := testhelpers.SetupTestDB(t)

	pm, err := prompts.NewManager()
	require.NoError(t, err)
	llm, err := service.NewGeminiLLMService(cfg, pm)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	registry := progression.NewRegistry()

	authService := service.NewAuthService(userRepo, cfg)
	interviewService := service.NewInterviewService(interviewRepo, llm)
	sessionService := service.NewSessionService(interviewService, sessionRepo, registry, llm)
	speechService := service.NewSpeechService(cfg)

	authController := NewAuthController(authService)
	interviewController := NewInterviewController(interviewService, llm)
	sessionController := NewSessionController(sessionService)
	speechController := NewSpeechController(speechService)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)

	authed := api.Group("")
	authed.Use(RequireAuth(authService))
	authed.POST("/interviews", interviewController.Create)
	authed.GET("/interviews", interviewController.List)
	authed.GET("/interviews/:interview_id", interviewController.Get)
	authed.GET("/stats", interviewController.Stats)
	authed.POST("/setup-chat", interviewController.SetupChat)
	authed.POST("/interviews/:interview_id/session/start", sessionController.Start)
	authed.GET("/interviews/:interview_id/session/current", sessionController.Current)
	authed.POST("/interviews/:interview_id/session/answer", sessionController.Answer)
	authed.POST("/interviews/:interview_id/session/skip", sessionController.Skip)
	authed.GET("/interviews/:interview_id/report", sessionController.Report)
	authed.POST("/speech/synthesize", speechController.Synthesize)
	authed.POST("/speech/transcribe", speechController.Transcribe)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: username, Password: "s3cret-pass", ConfirmPassword: "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: username, Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.LoginResponse](t, w).Token
}

func TestAuthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("password mismatch", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
			Username: "alice", Password: "s3cret-pass", ConfirmPassword: "different",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("register then duplicate", func(t *testing.T) {
		body := dto.RegisterRequest{Username: "alice", Password: "s3cret-pass", ConfirmPassword: "s3cret-pass"}
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bad login", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Username: "alice", Password: "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected route without token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/interviews", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestInterviewFlowEndToEnd(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/interviews", token, dto.InterviewCreateRequest{
		JobRole:         "Software Engineer",
		ExperienceLevel: "mid",
		Type:            "technical",
		Skills:          "Go, SQL",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	interview := decode[dto.InterviewResponse](t, w)
	require.Len(t, interview.Questions, 5)

	base := "/api/v1/interviews/" + uintToString(interview.ID)

	w = doJSON(t, r, http.MethodPost, base+"/session/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	progress := decode[dto.ProgressResponse](t, w)
	assert.Equal(t, "in_progress", progress.State)
	assert.Equal(t, interview.Questions[0], progress.Question)

	// Blank answers are rejected without advancing.
	w = doJSON(t, r, http.MethodPost, base+"/session/answer", token, dto.AnswerRequest{Answer: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for i := 0; i < 4; i++ {
		w = doJSON(t, r, http.MethodPost, base+"/session/answer", token, dto.AnswerRequest{Answer: "a real answer"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, base+"/session/skip", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	progress = decode[dto.ProgressResponse](t, w)
	assert.Equal(t, "completed", progress.State)

	// Restarting a completed interview without retake is refused.
	w = doJSON(t, r, http.MethodPost, base+"/session/start", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, base+"/report", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := decode[dto.ReportResponse](t, w)
	assert.Contains(t, report.Transcript, "Q: "+interview.Questions[0])
	assert.Contains(t, report.Transcript, progression.SkippedAnswer)
	assert.GreaterOrEqual(t, report.Feedback.OverallScore, 0)
	assert.LessOrEqual(t, report.Feedback.OverallScore, 100)

	w = doJSON(t, r, http.MethodGet, "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.UserStatsResponse](t, w)
	assert.EqualValues(t, 1, stats.Total)
	assert.EqualValues(t, 1, stats.Completed)
	assert.InDelta(t, 100.0, stats.SuccessRate, 0.001)
}

func TestInterviewOwnership(t *testing.T) {
	r := newTestRouter(t)
	aliceToken := registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/api/v1/interviews", aliceToken, dto.InterviewCreateRequest{
		JobRole: "SE", ExperienceLevel: "mid", Type: "technical",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	interview := decode[dto.InterviewResponse](t, w)

	w = doJSON(t, r, http.MethodGet, "/api/v1/interviews/"+uintToString(interview.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "another user's interview must look missing")
}

func TestSetupChatEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/setup-chat", token, dto.SetupChatRequest{
		Message: "I want to practice for a job interview",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.SetupChatResponse](t, w)
	assert.NotEmpty(t, resp.Reply)
	assert.False(t, resp.Complete)
}

func TestSpeechEndpointsDegradeGracefully(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/speech/synthesize", token, dto.SynthesizeRequest{Text: "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	synth := decode[dto.SynthesizeResponse](t, w)
	assert.Empty(t, synth.Audio)
	assert.NotEmpty(t, synth.Message)

	w = doJSON(t, r, http.MethodPost, "/api/v1/speech/transcribe", token, dto.TranscribeRequest{Audio: "aGVsbG8="})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.TranscriptPlaceholder, decode[dto.TranscribeResponse](t, w).Text)

	w = doJSON(t, r, http.MethodPost, "/api/v1/speech/transcribe", token, dto.TranscribeRequest{Audio: "%%%not-base64%%%"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
