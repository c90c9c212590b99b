package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, most recently created first
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies the given column values to the project with id and
// refreshes updated_at. Returns gorm.ErrRecordNotFound when no row matched.
func (r *ProjectRepo) Update(id uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()

	result := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the project with id. Returns gorm.ErrRecordNotFound when
// nothing matched.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
