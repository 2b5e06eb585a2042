package repositories

import (
	"context"

	"vetkom-cpd-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AttachmentRepository handles file attachment data access
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create creates a new attachment record
func (r *AttachmentRepository) Create(ctx context.Context, attachment *models.FileAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// GetByID gets an attachment by ID
func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*models.FileAttachment, error) {
	var attachment models.FileAttachment
	err := r.db.WithContext(ctx).First(&attachment, id).Error
	return &attachment, err
}

// List lists all attachments
func (r *AttachmentRepository) List(ctx context.Context) ([]*models.FileAttachment, error) {
	var attachments []*models.FileAttachment
	err := r.db.WithContext(ctx).Find(&attachments).Error
	return attachments, err
}

// Search lists attachments whose file name or description contains term
func (r *AttachmentRepository) Search(ctx context.Context, term string) ([]*models.FileAttachment, error) {
	var attachments []*models.FileAttachment
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("file_name LIKE ? OR description LIKE ?", pattern, pattern).
		Find(&attachments).Error
	return attachments, err
}

// ListByType lists attachments with the given file type
func (r *AttachmentRepository) ListByType(ctx context.Context, fileType string) ([]*models.FileAttachment, error) {
	var attachments []*models.FileAttachment
	err := r.db.WithContext(ctx).Where("file_type = ?", fileType).Find(&attachments).Error
	return attachments, err
}

// Update updates an attachment record
func (r *AttachmentRepository) Update(ctx context.Context, attachment *models.FileAttachment) error {
	return r.db.WithContext(ctx).Save(attachment).Error
}

// Delete deletes an attachment record. The stored file is left in place.
func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FileAttachment{}, id).Error
}

// Summary aggregates counts and total size over all attachments
func (r *AttachmentRepository) Summary(ctx context.Context) (*models.FilesSummary, error) {
	var summary models.FilesSummary

	if err := r.db.WithContext(ctx).Model(&models.FileAttachment{}).
		Count(&summary.TotalFiles).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.FileAttachment{}).
		Where("file_type LIKE ?", "%pdf%").
		Count(&summary.PdfFiles).Error; err != nil {
		return nil, err
	}

	var totalSize struct{ Total int64 }
	if err := r.db.WithContext(ctx).Model(&models.FileAttachment{}).
		Select("COALESCE(SUM(file_size), 0) AS total").
		Scan(&totalSize).Error; err != nil {
		return nil, err
	}
	summary.TotalSizeBytes = totalSize.Total

	return &summary, nil
}
