package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetkom-cpd-admin/internal/adapters/persistence/models"
	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/core/domain"
	"vetkom-cpd-admin/internal/pkg/document"
	"vetkom-cpd-admin/internal/pkg/placeholder"
	"vetkom-cpd-admin/internal/pkg/storage"

	"gorm.io/gorm"
)

// TemplateService handles email/document templates and their exports
type TemplateService struct {
	templateRepo *repositories.TemplateRepository
	storage      *storage.LocalStorage
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo *repositories.TemplateRepository, store *storage.LocalStorage) *TemplateService {
	return &TemplateService{templateRepo: templateRepo, storage: store}
}

// TemplateInput carries the editable fields of a template.
type TemplateInput struct {
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	TemplateType string `json:"templateType"`
}

// List lists all templates
func (s *TemplateService) List(ctx context.Context) ([]*models.EmailTemplate, error) {
	return s.templateRepo.List(ctx)
}

// GetByID gets a template by ID
func (s *TemplateService) GetByID(ctx context.Context, id uint) (*models.EmailTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

// Search lists templates matching a search term
func (s *TemplateService) Search(ctx context.Context, term string) ([]*models.EmailTemplate, error) {
	return s.templateRepo.Search(ctx, term)
}

// Create stores a new template. The placeholders cache is recomputed from
// the body, never taken from the caller.
func (s *TemplateService) Create(ctx context.Context, input *TemplateInput) (*models.EmailTemplate, error) {
	templateType := input.TemplateType
	if templateType == "" {
		templateType = models.TemplateTypeNotification
	}

	template := &models.EmailTemplate{
		Name:         input.Name,
		Subject:      input.Subject,
		Body:         input.Body,
		Placeholders: extractPlaceholderCache(input.Body),
		TemplateType: templateType,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Update edits an existing template and refreshes the placeholders cache.
func (s *TemplateService) Update(ctx context.Context, id uint, input *TemplateInput) (*models.EmailTemplate, error) {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	template.Name = input.Name
	template.Subject = input.Subject
	template.Body = input.Body
	template.Placeholders = extractPlaceholderCache(input.Body)
	if input.TemplateType != "" {
		template.TemplateType = input.TemplateType
	}
	now := time.Now().UTC()
	template.LastModified = &now

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.templateRepo.Delete(ctx, id)
}

// ExportDocx renders a template as DOCX bytes. The body goes in verbatim,
// encoded placeholders included.
func (s *TemplateService) ExportDocx(ctx context.Context, id uint) ([]byte, error) {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return document.RenderDocx(template.Name, template.Subject, template.Body)
}

// ExportPdf renders a template as PDF bytes with full manual layout.
func (s *TemplateService) ExportPdf(ctx context.Context, id uint) ([]byte, error) {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return document.RenderPDF(template.Name, template.Subject, template.Body)
}

// SaveDocxToStorage renders a template as DOCX and writes it under the CUD
// path as Name_yyyyMMdd_HHmmss.docx, returning the written path.
func (s *TemplateService) SaveDocxToStorage(ctx context.Context, id uint) (string, error) {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	data, err := document.RenderDocx(template.Name, template.Subject, template.Body)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.docx", template.Name, time.Now().Format("20060102_150405"))
	return s.storage.Write(filename, data)
}

// extractPlaceholderCache rebuilds the denormalized placeholders field from
// a stored (encoded) body.
func extractPlaceholderCache(body string) string {
	return placeholder.Join(placeholder.Extract(placeholder.Decode(body)))
}
