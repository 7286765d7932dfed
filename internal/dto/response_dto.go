package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// InterviewResponse is the full interview record with its parsed question list.
type InterviewResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	JobRole         string    `json:"job_role"`
	ExperienceLevel string    `json:"experience_level"`
	Type            string    `json:"type"`
	Skills          string    `json:"skills,omitempty"`
	Questions       []string  `json:"questions,omitempty"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// InterviewSummaryResponse is used when listing a user's interviews.
type InterviewSummaryResponse struct {
	ID              uint      `json:"id"`
	JobRole         string    `json:"job_role"`
	ExperienceLevel string    `json:"experience_level"`
	Type            string    `json:"type"`
	QuestionCount   int       `json:"question_count"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProgressResponse reflects the in-memory state of an active interview attempt.
type ProgressResponse struct {
	InterviewID   uint   `json:"interview_id"`
	State         string `json:"state"` // "not_started", "in_progress", "completed"
	QuestionIndex int    `json:"question_index"`
	QuestionCount int    `json:"question_count"`
	Question      string `json:"question,omitempty"`
}

// ReportResponse is the persisted session surfaced after completion.
type ReportResponse struct {
	SessionID   uint            `json:"session_id"`
	InterviewID uint            `json:"interview_id"`
	Transcript  string          `json:"transcript"`
	Feedback    FeedbackPayload `json:"feedback"`
	CompletedAt time.Time       `json:"completed_at"`
}

type UserStatsResponse struct {
	Total       int64   `json:"total"`
	Completed   int64   `json:"completed"`
	SuccessRate float64 `json:"success_rate"`
}

type SetupChatResponse struct {
	Reply     string    `json:"reply"`
	Extracted SetupInfo `json:"extracted"`
	Complete  bool      `json:"complete"`
}

type SynthesizeResponse struct {
	// Base64-encoded mp3/wav audio, empty when synthesis was unavailable.
	Audio   string `json:"audio,omitempty"`
	Message string `json:"message,omitempty"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}
