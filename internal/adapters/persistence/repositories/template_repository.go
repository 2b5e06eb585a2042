package repositories

import (
	"context"

	"vetkom-cpd-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// TemplateRepository handles email template data access
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create creates a new template
func (r *TemplateRepository) Create(ctx context.Context, template *models.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

// GetByID gets a template by ID
func (r *TemplateRepository) GetByID(ctx context.Context, id uint) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := r.db.WithContext(ctx).First(&template, id).Error
	return &template, err
}

// List lists all templates
func (r *TemplateRepository) List(ctx context.Context) ([]*models.EmailTemplate, error) {
	var templates []*models.EmailTemplate
	err := r.db.WithContext(ctx).Find(&templates).Error
	return templates, err
}

// Search lists templates whose name, subject or body contains term
func (r *TemplateRepository) Search(ctx context.Context, term string) ([]*models.EmailTemplate, error) {
	var templates []*models.EmailTemplate
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR subject LIKE ? OR body LIKE ?", pattern, pattern, pattern).
		Find(&templates).Error
	return templates, err
}

// Update updates a template
func (r *TemplateRepository) Update(ctx context.Context, template *models.EmailTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

// Delete deletes a template
func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.EmailTemplate{}, id).Error
}
