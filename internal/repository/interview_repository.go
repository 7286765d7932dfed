package repository

import (
	"errors"

	"echoprep/internal/model"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindAllByUser(userID uint) ([]model.Interview, error)
	UpdateQuestions(id uint, questionsJSON string) error
	MarkCompleted(id uint) error
	CountByUser(userID uint) (total int64, completed int64, err error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

// UpdateQuestions overwrites the stored question list; last write wins.
func (r *interviewRepository) UpdateQuestions(id uint, questionsJSON string) error {
	return r.db.Model(&model.Interview{}).Where("id = ?", id).Update("questions", questionsJSON).Error
}

// MarkCompleted is a one-way false->true transition. Re-marking an already
// completed interview is a no-op, not an error.
func (r *interviewRepository) MarkCompleted(id uint) error {
	return r.db.Model(&model.Interview{}).Where("id = ?", id).Update("completed", true).Error
}

func (r *interviewRepository) CountByUser(userID uint) (int64, int64, error) {
	var total, completed int64
	if err := r.db.Model(&model.Interview{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.Interview{}).Where("user_id = ? AND completed = ?", userID, true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
