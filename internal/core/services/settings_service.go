package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetkom-cpd-admin/internal/adapters/persistence/models"
	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/core/domain"

	"gorm.io/gorm"
)

// SettingsService handles the system settings singleton
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get loads the settings singleton
func (s *SettingsService) Get(ctx context.Context) (*models.SystemSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return settings, nil
}

// Update validates a partial update, merges it into the stored record, saves
// it and then reconciles the cross-field business rules on the result. The
// reconciled values are persisted.
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*models.SystemSettings, error) {
	if errs := ValidateSettingsUpdate(input); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	applyPartialUpdate(settings, input)
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	ApplyBusinessRules(settings)
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate runs the field rules over a partial update without touching the
// stored record. An empty result means the update would be accepted.
func (s *SettingsService) Validate(input *UpdateSettingsInput) []string {
	return ValidateSettingsUpdate(input)
}

// Reset restores the seed defaults on the existing settings row.
func (s *SettingsService) Reset(ctx context.Context) (*models.SystemSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	// invoice series codes and the info box survive a reset
	defaults := DefaultSettings()
	defaults.ID = settings.ID
	defaults.InvoiceSeriesIssued = settings.InvoiceSeriesIssued
	defaults.InvoiceSeriesReceived = settings.InvoiceSeriesReceived
	defaults.InvoiceSeriesSettlement = settings.InvoiceSeriesSettlement
	defaults.InfoBox = settings.InfoBox

	if err := s.settingsRepo.Update(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// GenerateInvoiceNumber builds the first invoice number of a series for a
// year: series code + two-digit year + three-digit order number.
func (s *SettingsService) GenerateInvoiceNumber(series string, year int) string {
	return fmt.Sprintf("%s%02d%03d", series, year%100, 1)
}

// IsCertificationExpiringSoon reports whether expiry falls within the
// configured expiry threshold from now.
func (s *SettingsService) IsCertificationExpiringSoon(ctx context.Context, expiry time.Time) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	threshold := expiry.AddDate(0, 0, -settings.CertificationExpiryThresholdDays)
	return !time.Now().Before(threshold), nil
}

// StudentPrice applies the configured student discount to a price.
func (s *SettingsService) StudentPrice(ctx context.Context, price float64) (float64, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return price * (1 - float64(settings.DefaultStudentDiscount)/100), nil
}

// NonMemberPrice applies the configured non-member surcharge to a price.
func (s *SettingsService) NonMemberPrice(ctx context.Context, price float64) (float64, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return price * (1 + float64(settings.DefaultNonMemberSurcharge)/100), nil
}

// DefaultSettings returns the seed values of the settings singleton.
func DefaultSettings() *models.SystemSettings {
	return &models.SystemSettings{
		ID:                               models.SettingsRecordID,
		AccountantEmail:                  "ekonom@vetkom.cz",
		CpdFee:                           500,
		InvoiceDueDays:                   14,
		PaymentUrgencyDays:               30,
		PaymentUrgencyPeriodDays:         3,
		ActionNotificationDays:           7,
		LastActionNotificationHours:      24,
		SurveyReminderDays:               14,
		CpdYearsCount:                    3,
		CpdClosureUrgencyDays:            30,
		CpdClosureUrgencyPeriodDays:      5,
		InvoiceSeriesIssued:              "324123",
		InvoiceSeriesReceived:            "124456",
		InvoiceSeriesSettlement:          "224789",
		DefaultCertificationYears:        5,
		CertificationExpiryThresholdDays: 30,
		InfoBox:                          "Vítejte v systému nastavení",
		DefaultStudentDiscount:           30,
		DefaultNonMemberSurcharge:        30,
	}
}

func applyPartialUpdate(settings *models.SystemSettings, input *UpdateSettingsInput) {
	if input.AccountantEmail != nil {
		settings.AccountantEmail = *input.AccountantEmail
	}
	if input.CpdFee != nil {
		settings.CpdFee = *input.CpdFee
	}
	if input.InvoiceDueDays != nil {
		settings.InvoiceDueDays = *input.InvoiceDueDays
	}
	if input.PaymentUrgencyDays != nil {
		settings.PaymentUrgencyDays = *input.PaymentUrgencyDays
	}
	if input.PaymentUrgencyPeriodDays != nil {
		settings.PaymentUrgencyPeriodDays = *input.PaymentUrgencyPeriodDays
	}
	if input.ActionNotificationDays != nil {
		settings.ActionNotificationDays = *input.ActionNotificationDays
	}
	if input.LastActionNotificationHours != nil {
		settings.LastActionNotificationHours = *input.LastActionNotificationHours
	}
	if input.SurveyReminderDays != nil {
		settings.SurveyReminderDays = *input.SurveyReminderDays
	}
	if input.CpdYearsCount != nil {
		settings.CpdYearsCount = *input.CpdYearsCount
	}
	if input.CpdClosureUrgencyDays != nil {
		settings.CpdClosureUrgencyDays = *input.CpdClosureUrgencyDays
	}
	if input.CpdClosureUrgencyPeriodDays != nil {
		settings.CpdClosureUrgencyPeriodDays = *input.CpdClosureUrgencyPeriodDays
	}
	if input.InvoiceSeriesIssued != nil {
		settings.InvoiceSeriesIssued = *input.InvoiceSeriesIssued
	}
	if input.InvoiceSeriesReceived != nil {
		settings.InvoiceSeriesReceived = *input.InvoiceSeriesReceived
	}
	if input.InvoiceSeriesSettlement != nil {
		settings.InvoiceSeriesSettlement = *input.InvoiceSeriesSettlement
	}
	if input.DefaultCertificationYears != nil {
		settings.DefaultCertificationYears = *input.DefaultCertificationYears
	}
	if input.CertificationExpiryThresholdDays != nil {
		settings.CertificationExpiryThresholdDays = *input.CertificationExpiryThresholdDays
	}
	if input.InfoBox != nil {
		settings.InfoBox = *input.InfoBox
	}
	if input.DefaultStudentDiscount != nil {
		settings.DefaultStudentDiscount = *input.DefaultStudentDiscount
	}
	if input.DefaultNonMemberSurcharge != nil {
		settings.DefaultNonMemberSurcharge = *input.DefaultNonMemberSurcharge
	}
}
