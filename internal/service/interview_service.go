package service

import (
	"context"
	"encoding/json"
	"fmt"

	"echoprep/internal/dto"
	"echoprep/internal/model"
	"echoprep/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type InterviewService interface {
	Create(ctx context.Context, userID uint, req dto.InterviewCreateRequest) (*dto.InterviewResponse, error)
	Get(userID, interviewID uint) (*dto.InterviewResponse, error)
	ListForUser(userID uint) ([]dto.InterviewSummaryResponse, error)
	Questions(userID, interviewID uint) (*model.Interview, []string, error)
	UserStats(userID uint) (*dto.UserStatsResponse, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	llm           GeminiLLMService
}

func NewInterviewService(interviewRepo repository.InterviewRepository, llm GeminiLLMService) InterviewService {
	return &interviewService{interviewRepo: interviewRepo, llm: llm}
}

// Create inserts the interview record with completed=false, then generates
// and attaches its question list. Question generation cannot fail outright:
// the LLM service degrades to fixed templates on any provider problem.
func (s *interviewService) Create(ctx context.Context, userID uint, req dto.InterviewCreateRequest) (*dto.InterviewResponse, error) {
	interview := &model.Interview{
		UserID:          userID,
		JobRole:         req.JobRole,
		ExperienceLevel: req.ExperienceLevel,
		Type:            req.Type,
		Skills:          req.Skills,
		Completed:       false,
	}
	if err := s.interviewRepo.Create(interview); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create interview record")
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	questions := s.llm.GenerateQuestions(ctx, req.JobRole, req.ExperienceLevel, req.Type, req.Skills)
	encoded, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode questions: %w", err)
	}
	if err := s.interviewRepo.UpdateQuestions(interview.ID, string(encoded)); err != nil {
		log.Error().Err(err).Uint("interviewID", interview.ID).Msg("Failed to attach questions to interview")
		return nil, fmt.Errorf("failed to attach questions: %w", err)
	}
	interview.Questions = string(encoded)

	return toInterviewResponse(interview, questions)
}

func (s *interviewService) Get(userID, interviewID uint) (*dto.InterviewResponse, error) {
	interview, questions, err := s.Questions(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return toInterviewResponse(interview, questions)
}

// Questions fetches the interview, verifies ownership and decodes the stored
// question list.
func (s *interviewService) Questions(userID, interviewID uint) (*model.Interview, []string, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, nil, err
	}
	if interview.UserID != userID {
		// Ownership violations look like a missing record to the caller.
		return nil, nil, repository.ErrInterviewNotFound
	}

	var questions []string
	if interview.Questions != "" {
		if err := json.Unmarshal([]byte(interview.Questions), &questions); err != nil {
			log.Error().Err(err).Uint("interviewID", interviewID).Msg("Stored question list is not valid JSON")
			return nil, nil, fmt.Errorf("failed to decode stored questions: %w", err)
		}
	}
	return interview, questions, nil
}

func (s *interviewService) ListForUser(userID uint) ([]dto.InterviewSummaryResponse, error) {
	interviews, err := s.interviewRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	summaries := make([]dto.InterviewSummaryResponse, 0, len(interviews))
	for i := range interviews {
		var summary dto.InterviewSummaryResponse
		if err := copier.Copy(&summary, &interviews[i]); err != nil {
			log.Error().Err(err).Uint("interviewID", interviews[i].ID).Msg("Error copying interview to summary DTO")
			continue
		}
		var questions []string
		if interviews[i].Questions != "" {
			if err := json.Unmarshal([]byte(interviews[i].Questions), &questions); err == nil {
				summary.QuestionCount = len(questions)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// UserStats derives aggregate counters from the interviews' completed flags,
// not from session rows. successRate is 0 when the user has no interviews.
func (s *interviewService) UserStats(userID uint) (*dto.UserStatsResponse, error) {
	total, completed, err := s.interviewRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error counting interviews: %w", err)
	}
	stats := &dto.UserStatsResponse{Total: total, Completed: completed}
	if total > 0 {
		stats.SuccessRate = 100 * float64(completed) / float64(total)
	}
	return stats, nil
}

func toInterviewResponse(interview *model.Interview, questions []string) (*dto.InterviewResponse, error) {
	var resp dto.InterviewResponse
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	resp.Questions = questions
	return &resp, nil
}
