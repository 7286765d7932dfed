package dto

// FeedbackPayload is the structured output of the interview performance
// analysis. The analyzer (or its deterministic fallback) always produces a
// complete payload; OverallScore is clamped to [0, 100] before persistence.
type FeedbackPayload struct {
	OverallScore        int             `json:"overall_score"`
	Feedback            FeedbackDetails `json:"feedback"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement"`
	Recommendations     []string        `json:"recommendations"`
}

// FeedbackDetails holds the four free-text evaluation criteria.
type FeedbackDetails struct {
	Clarity           string `json:"clarity"`
	TechnicalAccuracy string `json:"technical_accuracy"`
	ProblemSolving    string `json:"problem_solving"`
	Confidence        string `json:"confidence"`
}

// SetupInfo is the structured result of the conversational setup assistant.
// Each field is independently nullable; completeness is checked structurally,
// not by scanning a loose map.
type SetupInfo struct {
	JobRole         *string `json:"job_role"`
	ExperienceLevel *string `json:"experience_level"`
	InterviewType   *string `json:"interview_type"`
	Skills          *string `json:"skills"`
}

// IsComplete reports whether all four setup fields have been gathered.
func (s SetupInfo) IsComplete() bool {
	return s.JobRole != nil && s.ExperienceLevel != nil && s.InterviewType != nil && s.Skills != nil
}

// Merge fills empty fields of s from other, keeping existing values.
func (s SetupInfo) Merge(other SetupInfo) SetupInfo {
	if s.JobRole == nil {
		s.JobRole = other.JobRole
	}
	if s.ExperienceLevel == nil {
		s.ExperienceLevel = other.ExperienceLevel
	}
	if s.InterviewType == nil {
		s.InterviewType = other.InterviewType
	}
	if s.Skills == nil {
		s.Skills = other.Skills
	}
	return s
}
