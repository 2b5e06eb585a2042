package handlers

import (
	"errors"
	"strconv"

	"vetkom-cpd-admin/internal/core/domain"
	"vetkom-cpd-admin/internal/core/services"
	"vetkom-cpd-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// TemplateHandler handles email template endpoints
type TemplateHandler struct {
	templateService *services.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List lists all templates
// @Summary List templates
// @Description Get all email/document templates
// @Tags Templates
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.templateService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Templates retrieved successfully", templates)
}

// Search lists templates matching a query
// @Summary Search templates
// @Description Search templates by name, subject or body
// @Tags Templates
// @Accept json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /templates/search [get]
func (h *TemplateHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return response.BadRequest(c, "Search query is required")
	}

	templates, err := h.templateService.Search(c.Context(), term)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Templates retrieved successfully", templates)
}

// GetByID gets a template by ID
// @Summary Get template
// @Description Get a template by ID
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	template, err := h.templateService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Template retrieved successfully", template)
}

// Create creates a template
// @Summary Create template
// @Description Create a new template; placeholders are extracted from the body
// @Tags Templates
// @Accept json
// @Produce json
// @Param body body services.TemplateInput true "Template data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var input services.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" || input.Subject == "" || input.Body == "" {
		return response.BadRequest(c, "Name, subject and body are required")
	}

	template, err := h.templateService.Create(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}
	return response.Created(c, "Template created successfully", template)
}

// Update updates a template
// @Summary Update template
// @Description Update a template; placeholders are re-extracted from the body
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param body body services.TemplateInput true "Template data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	template, err := h.templateService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Template updated successfully", template)
}

// Delete deletes a template
// @Summary Delete template
// @Description Delete a template by ID
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.templateService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.NoContent(c)
}

// ExportDocx serves a template rendered as DOCX
// @Summary Export template as DOCX
// @Description Render a template into a word-processing document
// @Tags Templates
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path int true "Template ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /templates/{id}/export/docx [get]
func (h *TemplateHandler) ExportDocx(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	data, err := h.templateService.ExportDocx(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}

	c.Set(fiber.HeaderContentType, docxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="template.docx"`)
	return c.Send(data)
}

// ExportPdf serves a template rendered as PDF
// @Summary Export template as PDF
// @Description Render a template into a PDF with manual layout
// @Tags Templates
// @Produce application/pdf
// @Param id path int true "Template ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /templates/{id}/export/pdf [get]
func (h *TemplateHandler) ExportPdf(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	data, err := h.templateService.ExportPdf(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="template.pdf"`)
	return c.Send(data)
}

// SaveDocx renders a template as DOCX into the CUD storage path
// @Summary Save template DOCX to storage
// @Description Render a template as DOCX and store it under the CUD path
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /templates/{id}/save-docx [post]
func (h *TemplateHandler) SaveDocx(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	path, err := h.templateService.SaveDocxToStorage(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, "Template saved to storage", fiber.Map{
		"filePath": path,
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
