package repository

import (
	"github.com/saripudin14/siwate/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	FindByIDAndUser(id uint, userID uint) (*model.InterviewResult, error)
	FindAllByUser(userID uint) ([]model.InterviewResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// FindByIDAndUser loads a result with its answer and question, scoped to the
// owning user. A result belonging to someone else is indistinguishable from
// a missing one (gorm.ErrRecordNotFound).
func (r *resultRepository) FindByIDAndUser(id uint, userID uint) (*model.InterviewResult, error) {
	var result model.InterviewResult
	err := r.db.
		Preload("Answer").
		Preload("Answer.Question").
		Where("id = ? AND user_id = ?", id, userID).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.InterviewResult, error) {
	var results []model.InterviewResult
	err := r.db.
		Preload("Answer").
		Preload("Answer.Question").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
