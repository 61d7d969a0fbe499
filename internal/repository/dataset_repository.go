package repository

import (
	"github.com/saripudin14/siwate/internal/model"
	"gorm.io/gorm"
)

type DatasetRepository interface {
	Create(example *model.Dataset) error
	FindByID(id uint) (*model.Dataset, error)
	FindAll() ([]model.Dataset, error)
	Delete(id uint) error
	Count() (int64, error)
}

type datasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) Create(example *model.Dataset) error {
	return r.db.Create(example).Error
}

func (r *datasetRepository) FindByID(id uint) (*model.Dataset, error) {
	var example model.Dataset
	if err := r.db.First(&example, id).Error; err != nil {
		return nil, err
	}
	return &example, nil
}

func (r *datasetRepository) FindAll() ([]model.Dataset, error) {
	var examples []model.Dataset
	if err := r.db.Order("created_at desc").Find(&examples).Error; err != nil {
		return nil, err
	}
	return examples, nil
}

func (r *datasetRepository) Delete(id uint) error {
	return r.db.Delete(&model.Dataset{}, id).Error
}

func (r *datasetRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Dataset{}).Count(&count).Error
	return count, err
}
