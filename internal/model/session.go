package model

import (
	"time"

	"gorm.io/gorm"
)

// InterviewSession is the persisted record of a completed interview attempt.
// Only the most recent session per interview is surfaced through the API;
// older retakes stay in the table.
type InterviewSession struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	InterviewID uint           `json:"interview_id" gorm:"not null;index"`
	Transcript  string         `json:"transcript" gorm:"type:text;not null"`
	Feedback    string         `json:"feedback" gorm:"type:text;not null"` // JSON-encoded feedback payload
	CompletedAt time.Time      `json:"completed_at" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
