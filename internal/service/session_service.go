package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"echoprep/internal/dto"
	"echoprep/internal/model"
	"echoprep/internal/progression"
	"echoprep/internal/repository"

	"github.com/rs/zerolog/log"
)

// ErrSessionCompleted signals that the interview already has a persisted
// session and progression cannot be (re)started without an explicit retake.
var ErrSessionCompleted = errors.New("interview is already completed")

// SessionService drives the interview attempt lifecycle: it starts the
// in-memory progression, records answers and skips, and on completion builds
// the transcript, obtains feedback and persists the session transactionally.
type SessionService interface {
	Start(userID, interviewID uint, retake bool) (*dto.ProgressResponse, error)
	Current(userID, interviewID uint) (*dto.ProgressResponse, error)
	SubmitAnswer(ctx context.Context, userID, interviewID uint, answer string) (*dto.ProgressResponse, error)
	Skip(ctx context.Context, userID, interviewID uint) (*dto.ProgressResponse, error)
	Report(userID, interviewID uint) (*dto.ReportResponse, error)
}

type sessionService struct {
	interviews  InterviewService
	sessionRepo repository.SessionRepository
	registry    *progression.Registry
	llm         GeminiLLMService
}

func NewSessionService(
	interviews InterviewService,
	sessionRepo repository.SessionRepository,
	registry *progression.Registry,
	llm GeminiLLMService,
) SessionService {
	return &sessionService{
		interviews:  interviews,
		sessionRepo: sessionRepo,
		registry:    registry,
		llm:         llm,
	}
}

// Start begins a new attempt. A completed interview is not replayed unless
// retake is set; callers should fetch the persisted report instead.
func (s *sessionService) Start(userID, interviewID uint, retake bool) (*dto.ProgressResponse, error) {
	interview, questions, err := s.interviews.Questions(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Completed && !retake {
		return nil, ErrSessionCompleted
	}

	prog, err := progression.New(interviewID, questions)
	if err != nil {
		return nil, err
	}
	if err := prog.Start(); err != nil {
		return nil, err
	}
	s.registry.Put(prog)

	log.Info().Uint("interviewID", interviewID).Int("questions", len(questions)).Msg("Interview attempt started")
	return toProgressResponse(prog), nil
}

func (s *sessionService) Current(userID, interviewID uint) (*dto.ProgressResponse, error) {
	if _, _, err := s.interviews.Questions(userID, interviewID); err != nil {
		return nil, err
	}
	prog, ok := s.registry.Get(interviewID)
	if !ok {
		return nil, progression.ErrNotStarted
	}
	return toProgressResponse(prog), nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, userID, interviewID uint, answer string) (*dto.ProgressResponse, error) {
	return s.advance(ctx, userID, interviewID, func(p *progression.Progression) error {
		return p.SubmitAnswer(answer)
	})
}

func (s *sessionService) Skip(ctx context.Context, userID, interviewID uint) (*dto.ProgressResponse, error) {
	return s.advance(ctx, userID, interviewID, func(p *progression.Progression) error {
		return p.Skip()
	})
}

func (s *sessionService) advance(ctx context.Context, userID, interviewID uint, step func(*progression.Progression) error) (*dto.ProgressResponse, error) {
	interview, _, err := s.interviews.Questions(userID, interviewID)
	if err != nil {
		return nil, err
	}
	prog, ok := s.registry.Get(interviewID)
	if !ok {
		return nil, progression.ErrNotStarted
	}

	if err := step(prog); err != nil {
		return nil, err
	}

	if prog.State() == progression.StateCompleted {
		if err := s.finalize(ctx, interview, prog); err != nil {
			return nil, err
		}
		s.registry.Remove(interviewID)
	}
	return toProgressResponse(prog), nil
}

// finalize builds the transcript, asks the analyzer for feedback (degrading
// to the deterministic fallback on any error or timeout) and persists the
// session together with the completed flag in one transaction. The transcript
// is never dropped.
func (s *sessionService) finalize(ctx context.Context, interview *model.Interview, prog *progression.Progression) error {
	transcript := prog.Transcript()

	feedback, err := s.llm.AnalyzePerformance(ctx, transcript, interview.JobRole, interview.ExperienceLevel, interview.Skills)
	if err != nil {
		log.Warn().Err(err).Uint("interviewID", interview.ID).Msg("Performance analysis degraded to fallback feedback")
	}

	encoded, err := json.Marshal(feedback)
	if err != nil {
		return fmt.Errorf("failed to encode feedback payload: %w", err)
	}

	session := &model.InterviewSession{
		InterviewID: interview.ID,
		Transcript:  transcript,
		Feedback:    string(encoded),
		CompletedAt: time.Now(),
	}
	if err := s.sessionRepo.RecordSession(session); err != nil {
		log.Error().Err(err).Uint("interviewID", interview.ID).Msg("Failed to persist interview session")
		return fmt.Errorf("failed to record session: %w", err)
	}

	log.Info().Uint("interviewID", interview.ID).Uint("sessionID", session.ID).Int("score", feedback.OverallScore).Msg("Interview session recorded")
	return nil
}

// Report returns the persisted session for a completed interview. Revisiting
// a completed interview with no in-memory state lands here instead of
// replaying progression.
func (s *sessionService) Report(userID, interviewID uint) (*dto.ReportResponse, error) {
	if _, _, err := s.interviews.Questions(userID, interviewID); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.FindLatestByInterview(interviewID)
	if err != nil {
		return nil, err
	}

	var feedback dto.FeedbackPayload
	if err := json.Unmarshal([]byte(session.Feedback), &feedback); err != nil {
		log.Error().Err(err).Uint("sessionID", session.ID).Msg("Stored feedback payload is not valid JSON")
		return nil, fmt.Errorf("failed to decode stored feedback: %w", err)
	}

	return &dto.ReportResponse{
		SessionID:   session.ID,
		InterviewID: session.InterviewID,
		Transcript:  session.Transcript,
		Feedback:    feedback,
		CompletedAt: session.CompletedAt,
	}, nil
}

func toProgressResponse(prog *progression.Progression) *dto.ProgressResponse {
	return &dto.ProgressResponse{
		InterviewID:   prog.InterviewID(),
		State:         string(prog.State()),
		QuestionIndex: prog.Index(),
		QuestionCount: prog.QuestionCount(),
		Question:      prog.CurrentQuestion(),
	}
}
