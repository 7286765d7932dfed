package model

import (
	"time"

	"gorm.io/gorm"
)

type Interview struct {
	ID              uint               `gorm:"primarykey" json:"id"`
	UserID          uint               `json:"user_id" gorm:"not null;index"`
	JobRole         string             `json:"job_role" gorm:"not null"`
	ExperienceLevel string             `json:"experience_level" gorm:"not null"`
	Type            string             `json:"type" gorm:"not null"` // "technical", "behavioral", "mixed"
	Skills          string             `json:"skills,omitempty" gorm:"type:text"`
	Questions       string             `json:"questions,omitempty" gorm:"type:text"` // JSON-encoded ordered []string
	Completed       bool               `json:"completed" gorm:"not null;default:false"`
	Sessions        []InterviewSession `json:"sessions,omitempty" gorm:"foreignKey:InterviewID"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`
}
