package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrSettingsNotFound   = errors.New("system settings not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrAttachmentNotFound = errors.New("file attachment not found")
	ErrFileMissing        = errors.New("file not found on disk")
)

// ValidationError carries every field-rule violation found in a settings
// update. The messages are surfaced together, never one at a time.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, ", "))
}
