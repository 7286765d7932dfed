package dto

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=64"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// InterviewCreateRequest carries the four setup fields gathered before an
// interview starts. Questions are generated server-side after creation.
type InterviewCreateRequest struct {
	JobRole         string `json:"job_role" binding:"required"`
	ExperienceLevel string `json:"experience_level" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=technical behavioral mixed"`
	Skills          string `json:"skills"`
}

type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// SetupChatRequest is one user turn of the conversational setup assistant.
type SetupChatRequest struct {
	Message string   `json:"message" binding:"required"`
	History []string `json:"history"`
}

type SynthesizeRequest struct {
	Text string `json:"text" binding:"required"`
}

type TranscribeRequest struct {
	// Base64-encoded audio payload.
	Audio string `json:"audio" binding:"required"`
}
