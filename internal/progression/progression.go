package progression

import (
	"errors"
	"strings"
)

var (
	ErrNotStarted       = errors.New("interview has not been started")
	ErrAlreadyStarted   = errors.New("interview is already in progress")
	ErrAlreadyCompleted = errors.New("interview is already completed")
	ErrBlankAnswer      = errors.New("answer must contain at least one non-whitespace character")
	ErrNoQuestions      = errors.New("interview has no questions")
)

// SkippedAnswer is the sentinel recorded when a question is skipped.
const SkippedAnswer = "(skipped)"

type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// QA is one captured question/answer pair, in question order.
type QA struct {
	Question string
	Answer   string
}

// Progression walks a user through an interview's question list one question
// at a time. It is a strictly linear state machine:
//
//	NotStarted --Start--> InProgress(0) --SubmitAnswer/Skip--> ... --> Completed
//
// One instance exists per active attempt, held in the process-local Registry.
// Nothing is persisted until the caller finalizes the completed attempt.
type Progression struct {
	interviewID uint
	questions   []string
	responses   []QA
	index       int
	state       State
}

func New(interviewID uint, questions []string) (*Progression, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Progression{
		interviewID: interviewID,
		questions:   questions,
		state:       StateNotStarted,
	}, nil
}

func (p *Progression) InterviewID() uint { return p.interviewID }
func (p *Progression) State() State      { return p.state }

// Index is the zero-based position of the current question. It is
// monotonically non-decreasing and bounded by len(questions).
func (p *Progression) Index() int { return p.index }

func (p *Progression) QuestionCount() int { return len(p.questions) }

// CurrentQuestion returns the question awaiting an answer. Empty once the
// attempt has completed or before it started.
func (p *Progression) CurrentQuestion() string {
	if p.state != StateInProgress {
		return ""
	}
	return p.questions[p.index]
}

// Responses returns the captured Q/A pairs in question order.
func (p *Progression) Responses() []QA {
	out := make([]QA, len(p.responses))
	copy(out, p.responses)
	return out
}

func (p *Progression) Start() error {
	switch p.state {
	case StateInProgress:
		return ErrAlreadyStarted
	case StateCompleted:
		return ErrAlreadyCompleted
	}
	p.state = StateInProgress
	p.index = 0
	return nil
}

// SubmitAnswer records the answer for the current question and advances.
// A blank answer refuses the transition: the index is unchanged and the
// caller gets a validation error before any store is touched.
func (p *Progression) SubmitAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return ErrBlankAnswer
	}
	return p.advance(answer)
}

// Skip advances past the current question, recording the skip sentinel.
func (p *Progression) Skip() error {
	return p.advance(SkippedAnswer)
}

func (p *Progression) advance(answer string) error {
	switch p.state {
	case StateNotStarted:
		return ErrNotStarted
	case StateCompleted:
		return ErrAlreadyCompleted
	}

	p.responses = append(p.responses, QA{
		Question: p.questions[p.index],
		Answer:   answer,
	})
	p.index++
	if p.index >= len(p.questions) {
		p.state = StateCompleted
	}
	return nil
}

// Transcript concatenates the captured pairs into "Q: ...\nA: ..." blocks
// separated by a blank line. The persisted transcript must reflect exactly
// these pairs, in order.
func (p *Progression) Transcript() string {
	blocks := make([]string, 0, len(p.responses))
	for _, qa := range p.responses {
		blocks = append(blocks, "Q: "+qa.Question+"\nA: "+qa.Answer)
	}
	return strings.Join(blocks, "\n\n")
}
