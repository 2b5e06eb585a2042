package models

import (
	"time"

	"gorm.io/gorm"
)

// SettingsRecordID is the fixed identity of the settings singleton. Exactly
// one row exists; it is seeded at first boot and never deleted.
const SettingsRecordID uint = 1

// Template types
const (
	TemplateTypeNotification = "notification"
	TemplateTypeDocument     = "document"
)

// SystemSettings represents the single global configuration row.
type SystemSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Payment / invoicing
	AccountantEmail          string `gorm:"size:100;not null" json:"accountantEmail"`
	CpdFee                   int    `gorm:"not null" json:"cpdFee"`
	InvoiceDueDays           int    `gorm:"not null" json:"invoiceDueDays"`
	PaymentUrgencyDays       int    `gorm:"not null" json:"paymentUrgencyDays"`
	PaymentUrgencyPeriodDays int    `gorm:"not null" json:"paymentUrgencyPeriodDays"`
	InvoiceSeriesIssued      string `gorm:"size:6;not null" json:"invoiceSeriesIssued"`
	InvoiceSeriesReceived    string `gorm:"size:6;not null" json:"invoiceSeriesReceived"`
	InvoiceSeriesSettlement  string `gorm:"size:6;not null" json:"invoiceSeriesSettlement"`

	// Notifications
	ActionNotificationDays      int `gorm:"not null" json:"actionNotificationDays"`
	LastActionNotificationHours int `gorm:"not null" json:"lastActionNotificationHours"`
	SurveyReminderDays          int `gorm:"not null" json:"surveyReminderDays"`

	// CPD
	CpdYearsCount               int `gorm:"not null" json:"cpdYearsCount"`
	CpdClosureUrgencyDays       int `gorm:"not null" json:"cpdClosureUrgencyDays"`
	CpdClosureUrgencyPeriodDays int `gorm:"not null" json:"cpdClosureUrgencyPeriodDays"`

	// Certification
	DefaultCertificationYears        int `gorm:"not null" json:"defaultCertificationYears"`
	CertificationExpiryThresholdDays int `gorm:"not null" json:"certificationExpiryThresholdDays"`

	// Free-text info box shown in the admin UI
	InfoBox string `gorm:"type:text" json:"infoBox"`

	// Commercial
	DefaultStudentDiscount    int `gorm:"not null" json:"defaultStudentDiscount"`
	DefaultNonMemberSurcharge int `gorm:"not null" json:"defaultNonMemberSurcharge"`
}

func (SystemSettings) TableName() string {
	return "system_settings"
}

// EmailTemplate represents an email or document template. Body stores
// placeholders in the encoded &lt;name&gt; form; Placeholders caches the
// comma-joined names extracted from the body at last save.
type EmailTemplate struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Subject      string     `gorm:"size:200;not null" json:"subject"`
	Body         string     `gorm:"type:text;not null" json:"body"`
	Placeholders string     `gorm:"size:500" json:"placeholders"`
	TemplateType string     `gorm:"size:20;default:'notification'" json:"templateType"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	LastModified *time.Time `json:"lastModified"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}

// FileAttachment represents an uploaded file. CudPath points at the stored
// copy on disk; the record and the file are not kept in sync transactionally.
type FileAttachment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FileName     string     `gorm:"size:255;not null" json:"fileName"`
	CudPath      string     `gorm:"size:500;not null" json:"cudPath"`
	FileType     string     `gorm:"size:100;not null" json:"fileType"`
	Description  string     `gorm:"type:text" json:"description"`
	FileSize     int64      `json:"fileSize"`
	UploadDate   time.Time  `json:"uploadDate"`
	LastModified *time.Time `json:"lastModified"`
}

func (FileAttachment) TableName() string {
	return "file_attachments"
}

// FilesSummary aggregates the attachment table for the admin dashboard.
type FilesSummary struct {
	TotalFiles     int64 `json:"totalFiles"`
	PdfFiles       int64 `json:"pdfFiles"`
	TotalSizeBytes int64 `json:"totalSizeBytes"`
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SystemSettings{},
		&EmailTemplate{},
		&FileAttachment{},
	)
}
