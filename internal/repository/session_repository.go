package repository

import (
	"errors"

	"echoprep/internal/model"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	RecordSession(session *model.InterviewSession) error
	FindLatestByInterview(interviewID uint) (*model.InterviewSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// RecordSession inserts the session row and flips the owning interview's
// completed flag in a single transaction, so the two can never diverge.
func (r *sessionRepository) RecordSession(session *model.InterviewSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		return tx.Model(&model.Interview{}).
			Where("id = ?", session.InterviewID).
			Update("completed", true).Error
	})
}

// FindLatestByInterview returns the newest session for the interview. Older
// retakes remain in the table but are not reachable through this interface.
func (r *sessionRepository) FindLatestByInterview(interviewID uint) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.db.Where("interview_id = ?", interviewID).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}
