package services

import "vetkom-cpd-admin/internal/adapters/persistence/models"

// ApplyBusinessRules reconciles cross-field dependencies on a fully populated
// settings record, clamping dependent values into range. It runs after every
// successful update, on the merged record, and never fails. Applying it a
// second time changes nothing.
func ApplyBusinessRules(s *models.SystemSettings) {
	if s.PaymentUrgencyDays >= s.InvoiceDueDays {
		s.PaymentUrgencyDays = s.InvoiceDueDays - 1
	}

	if s.CpdClosureUrgencyDays > 90 {
		s.CpdClosureUrgencyDays = 90
	}

	if s.PaymentUrgencyPeriodDays > s.PaymentUrgencyDays {
		s.PaymentUrgencyPeriodDays = max(1, s.PaymentUrgencyDays/2)
	}

	if s.LastActionNotificationHours > s.ActionNotificationDays*24 {
		s.LastActionNotificationHours = s.ActionNotificationDays * 24
	}

	if s.SurveyReminderDays > s.PaymentUrgencyDays {
		s.SurveyReminderDays = s.PaymentUrgencyDays
	}

	if s.CertificationExpiryThresholdDays > s.DefaultCertificationYears*365 {
		s.CertificationExpiryThresholdDays = s.DefaultCertificationYears * 365
	}
}
