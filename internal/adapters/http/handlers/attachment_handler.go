package handlers

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"vetkom-cpd-admin/internal/core/domain"
	"vetkom-cpd-admin/internal/core/services"
	"vetkom-cpd-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Upload limits
const maxUploadSize = 10 * 1024 * 1024

var allowedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// AttachmentHandler handles file attachment endpoints
type AttachmentHandler struct {
	attachmentService *services.AttachmentService
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(attachmentService *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// List lists all attachments
// @Summary List file attachments
// @Description Get all file attachment records
// @Tags Files
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /files [get]
func (h *AttachmentHandler) List(c *fiber.Ctx) error {
	attachments, err := h.attachmentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Files retrieved successfully", attachments)
}

// Search lists attachments matching a query
// @Summary Search file attachments
// @Description Search attachments by file name or description
// @Tags Files
// @Accept json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /files/search [get]
func (h *AttachmentHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return response.BadRequest(c, "Search query is required")
	}

	attachments, err := h.attachmentService.Search(c.Context(), term)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Files retrieved successfully", attachments)
}

// ListByType lists attachments with a given type
// @Summary List file attachments by type
// @Description Filter attachments by file type (extension)
// @Tags Files
// @Accept json
// @Produce json
// @Param fileType query string true "File type"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /files/by-type [get]
func (h *AttachmentHandler) ListByType(c *fiber.Ctx) error {
	fileType := c.Query("fileType")
	if fileType == "" {
		return response.BadRequest(c, "File type is required")
	}

	attachments, err := h.attachmentService.ListByType(c.Context(), fileType)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Files retrieved successfully", attachments)
}

// Summary aggregates the attachment table
// @Summary File attachments summary
// @Description Get total counts and size over all attachments
// @Tags Files
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /files/summary [get]
func (h *AttachmentHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.attachmentService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Files summary retrieved successfully", summary)
}

// GetByID gets an attachment by ID
// @Summary Get file attachment
// @Description Get a file attachment record by ID
// @Tags Files
// @Accept json
// @Produce json
// @Param id path int true "Attachment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /files/{id} [get]
func (h *AttachmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	attachment, err := h.attachmentService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAttachmentNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "File retrieved successfully", attachment)
}

// GetInfo gets an attachment with its on-disk state
// @Summary Get file attachment info
// @Description Get an attachment record together with whether its file exists on disk
// @Tags Files
// @Accept json
// @Produce json
// @Param id path int true "Attachment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /files/{id}/info [get]
func (h *AttachmentHandler) GetInfo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	info, err := h.attachmentService.Info(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAttachmentNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "File info retrieved successfully", info)
}

// Upload accepts a multipart file upload
// @Summary Upload file
// @Description Upload a file (max 10 MB, .pdf/.docx/.doc/.txt) and create its record
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param description formData string false "Description"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /files/upload [post]
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file provided")
	}

	if fileHeader.Size == 0 {
		return response.BadRequest(c, "No file provided")
	}
	if fileHeader.Size > maxUploadSize {
		return response.BadRequest(c, "File size exceeds maximum allowed size")
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !isAllowedExtension(extension) {
		return response.BadRequest(c, "Allowed file types are: "+strings.Join(allowedExtensions, ", "))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	attachment, err := h.attachmentService.Upload(c.Context(), &services.UploadInput{
		FileName:    fileHeader.Filename,
		Extension:   extension,
		Description: c.FormValue("description"),
		Content:     content,
	})
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return response.Created(c, "File uploaded successfully", attachment)
}

// Update edits attachment metadata
// @Summary Update file attachment
// @Description Update attachment metadata (name, description)
// @Tags Files
// @Accept json
// @Produce json
// @Param id path int true "Attachment ID"
// @Param body body services.UpdateAttachmentInput true "Metadata"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /files/{id} [put]
func (h *AttachmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateAttachmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	attachment, err := h.attachmentService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrAttachmentNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "File updated successfully", attachment)
}

// Delete removes an attachment record
// @Summary Delete file attachment
// @Description Delete the attachment record; the stored file is left on disk
// @Tags Files
// @Accept json
// @Produce json
// @Param id path int true "Attachment ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /files/{id} [delete]
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.attachmentService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAttachmentNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.NoContent(c)
}

// Download serves the stored file
// @Summary Download file
// @Description Download the stored file for an attachment record
// @Tags Files
// @Produce application/octet-stream
// @Param id path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /files/{id}/download [get]
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	result, err := h.attachmentService.Download(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAttachmentNotFound), errors.Is(err, domain.ErrFileMissing):
			return response.NotFound(c, err.Error())
		default:
			return response.InternalServerError(c, err.Error())
		}
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.FileName+`"`)
	return c.Send(result.Content)
}

func isAllowedExtension(extension string) bool {
	for _, allowed := range allowedExtensions {
		if extension == allowed {
			return true
		}
	}
	return false
}
