package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetkom-cpd-admin/internal/adapters/persistence/models"
	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/core/domain"
	"vetkom-cpd-admin/internal/pkg/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentService handles file attachment records and their stored files
type AttachmentService struct {
	attachmentRepo *repositories.AttachmentRepository
	storage        *storage.LocalStorage
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(attachmentRepo *repositories.AttachmentRepository, store *storage.LocalStorage) *AttachmentService {
	return &AttachmentService{attachmentRepo: attachmentRepo, storage: store}
}

// UploadInput carries an uploaded file and its metadata.
type UploadInput struct {
	FileName    string
	Extension   string
	Description string
	Content     []byte
}

// UpdateAttachmentInput edits attachment metadata only; the stored file is
// never touched.
type UpdateAttachmentInput struct {
	FileName    string `json:"fileName"`
	Description string `json:"description"`
}

// DownloadResult is the payload served for a download.
type DownloadResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

// FileInfo is an attachment record together with its on-disk state.
type FileInfo struct {
	*models.FileAttachment
	FileExists bool `json:"fileExists"`
}

// List lists all attachments
func (s *AttachmentService) List(ctx context.Context) ([]*models.FileAttachment, error) {
	return s.attachmentRepo.List(ctx)
}

// GetByID gets an attachment by ID
func (s *AttachmentService) GetByID(ctx context.Context, id uint) (*models.FileAttachment, error) {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttachmentNotFound
		}
		return nil, err
	}
	return attachment, nil
}

// Search lists attachments matching a search term
func (s *AttachmentService) Search(ctx context.Context, term string) ([]*models.FileAttachment, error) {
	return s.attachmentRepo.Search(ctx, term)
}

// ListByType lists attachments with the given file type
func (s *AttachmentService) ListByType(ctx context.Context, fileType string) ([]*models.FileAttachment, error) {
	return s.attachmentRepo.ListByType(ctx, fileType)
}

// Upload writes the file bytes to storage and then inserts the metadata
// record. The two steps are not atomic; a failure after the write leaves an
// orphaned file behind.
func (s *AttachmentService) Upload(ctx context.Context, input *UploadInput) (*models.FileAttachment, error) {
	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), input.FileName)
	path, err := s.storage.Write(storedName, input.Content)
	if err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = "Uploaded file: " + input.FileName
	}

	attachment := &models.FileAttachment{
		FileName:    input.FileName,
		CudPath:     path,
		FileType:    input.Extension,
		Description: description,
		FileSize:    int64(len(input.Content)),
		UploadDate:  time.Now().UTC(),
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// Update edits attachment metadata
func (s *AttachmentService) Update(ctx context.Context, id uint, input *UpdateAttachmentInput) (*models.FileAttachment, error) {
	attachment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FileName != "" {
		attachment.FileName = input.FileName
	}
	if input.Description != "" {
		attachment.Description = input.Description
	}
	now := time.Now().UTC()
	attachment.LastModified = &now

	if err := s.attachmentRepo.Update(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// Delete removes the attachment record. The stored file stays on disk.
func (s *AttachmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.attachmentRepo.Delete(ctx, id)
}

// Info returns an attachment record together with whether its stored file is
// still present on disk. A missing file is reported, not treated as an error.
func (s *AttachmentService) Info(ctx context.Context, id uint) (*FileInfo, error) {
	attachment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		FileAttachment: attachment,
		FileExists:     s.storage.Exists(attachment.CudPath),
	}, nil
}

// Download reads the stored file for an attachment. A record whose file has
// gone missing on disk surfaces as not found here, not earlier.
func (s *AttachmentService) Download(ctx context.Context, id uint) (*DownloadResult, error) {
	attachment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.storage.Exists(attachment.CudPath) {
		return nil, domain.ErrFileMissing
	}

	content, err := s.storage.Read(attachment.CudPath)
	if err != nil {
		return nil, err
	}

	return &DownloadResult{
		FileName:    attachment.FileName,
		ContentType: ContentTypeForExtension(attachment.FileType),
		Content:     content,
	}, nil
}

// Summary aggregates the attachment table
func (s *AttachmentService) Summary(ctx context.Context) (*models.FilesSummary, error) {
	return s.attachmentRepo.Summary(ctx)
}

// ContentTypeForExtension maps an allowed upload extension to its MIME type.
func ContentTypeForExtension(extension string) string {
	switch extension {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
