package services

import (
	"testing"

	"vetkom-cpd-admin/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyBusinessRulesClamps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SystemSettings)
		check  func(*testing.T, *models.SystemSettings)
	}{
		{
			name: "payment urgency pulled under invoice due days",
			mutate: func(s *models.SystemSettings) {
				s.InvoiceDueDays = 10
				s.PaymentUrgencyDays = 15
			},
			check: func(t *testing.T, s *models.SystemSettings) {
				assert.Equal(t, 9, s.PaymentUrgencyDays)
			},
		},
		{
			name: "cpd closure urgency capped at 90",
			mutate: func(s *models.SystemSettings) {
				s.CpdClosureUrgencyDays = 120
			},
			check: func(t *testing.T, s *models.SystemSettings) {
				assert.Equal(t, 90, s.CpdClosureUrgencyDays)
			},
		},
		{
			name: "urgency period halved but never below one",
			mutate: func(s *models.SystemSettings) {
				s.InvoiceDueDays = 5
				s.PaymentUrgencyDays = 1
				s.PaymentUrgencyPeriodDays = 3
			},
			check: func(t *testing.T, s *models.SystemSettings) {
				assert.Equal(t, 1, s.PaymentUrgencyPeriodDays)
			},
		},
		{
			name: "last notification hours capped by notification days",
			mutate: func(s *models.SystemSettings) {
				s.ActionNotificationDays = 2
				s.LastActionNotificationHours = 100
			},
			check: func(t *testing.T, s *models.SystemSettings) {
				assert.Equal(t, 48, s.LastActionNotificationHours)
			},
		},
		{
			name: "survey reminder capped by payment urgency",
			mutate: func(s *models.SystemSettings) {
				s.InvoiceDueDays = 10
				s.PaymentUrgencyDays = 15
				s.SurveyReminderDays = 14
			},
			check: func(t *testing.T, s *models.SystemSettings) {
				// cascades through the reconciled urgency value
				assert.Equal(t, 9, s.SurveyReminderDays)
			},
		},
		{
			name: "certification threshold capped by certification years",
			mutate: func(s *models.SystemSettings) {
				s.DefaultCertificationYears = 1
				s.CertificationExpiryThresholdDays = 400
			},
			check: func(t *testing.T, s *models.SystemSettings) {
				assert.Equal(t, 365, s.CertificationExpiryThresholdDays)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			ApplyBusinessRules(s)
			tt.check(t, s)
		})
	}
}

func TestApplyBusinessRulesIdempotent(t *testing.T) {
	s := DefaultSettings()
	s.InvoiceDueDays = 10
	s.PaymentUrgencyDays = 15
	s.CpdClosureUrgencyDays = 120
	s.SurveyReminderDays = 14

	ApplyBusinessRules(s)
	once := *s
	ApplyBusinessRules(s)

	assert.Equal(t, once, *s)
}

func TestApplyBusinessRulesConsistentRecordUntouched(t *testing.T) {
	s := &models.SystemSettings{
		AccountantEmail:                  "ekonom@vetkom.cz",
		CpdFee:                           500,
		InvoiceDueDays:                   14,
		PaymentUrgencyDays:               10,
		PaymentUrgencyPeriodDays:         3,
		ActionNotificationDays:           7,
		LastActionNotificationHours:      24,
		SurveyReminderDays:               10,
		CpdYearsCount:                    3,
		CpdClosureUrgencyDays:            30,
		CpdClosureUrgencyPeriodDays:      5,
		DefaultCertificationYears:        5,
		CertificationExpiryThresholdDays: 30,
		DefaultStudentDiscount:           30,
		DefaultNonMemberSurcharge:        30,
	}
	before := *s

	ApplyBusinessRules(s)

	assert.Equal(t, before, *s)
}
