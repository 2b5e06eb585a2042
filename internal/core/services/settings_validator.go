package services

import "net/mail"

// UpdateSettingsInput is a partial settings update. Nil fields are left
// untouched by the update and skipped by validation.
type UpdateSettingsInput struct {
	AccountantEmail                  *string `json:"accountantEmail,omitempty"`
	CpdFee                           *int    `json:"cpdFee,omitempty"`
	InvoiceDueDays                   *int    `json:"invoiceDueDays,omitempty"`
	PaymentUrgencyDays               *int    `json:"paymentUrgencyDays,omitempty"`
	PaymentUrgencyPeriodDays         *int    `json:"paymentUrgencyPeriodDays,omitempty"`
	ActionNotificationDays           *int    `json:"actionNotificationDays,omitempty"`
	LastActionNotificationHours      *int    `json:"lastActionNotificationHours,omitempty"`
	SurveyReminderDays               *int    `json:"surveyReminderDays,omitempty"`
	CpdYearsCount                    *int    `json:"cpdYearsCount,omitempty"`
	CpdClosureUrgencyDays            *int    `json:"cpdClosureUrgencyDays,omitempty"`
	CpdClosureUrgencyPeriodDays      *int    `json:"cpdClosureUrgencyPeriodDays,omitempty"`
	InvoiceSeriesIssued              *string `json:"invoiceSeriesIssued,omitempty"`
	InvoiceSeriesReceived            *string `json:"invoiceSeriesReceived,omitempty"`
	InvoiceSeriesSettlement          *string `json:"invoiceSeriesSettlement,omitempty"`
	DefaultCertificationYears        *int    `json:"defaultCertificationYears,omitempty"`
	CertificationExpiryThresholdDays *int    `json:"certificationExpiryThresholdDays,omitempty"`
	InfoBox                          *string `json:"infoBox,omitempty"`
	DefaultStudentDiscount           *int    `json:"defaultStudentDiscount,omitempty"`
	DefaultNonMemberSurcharge        *int    `json:"defaultNonMemberSurcharge,omitempty"`
}

// ValidateSettingsUpdate checks every present field of a partial update
// against its range or format rule and returns all violations at once.
// An empty result means the update is valid.
func ValidateSettingsUpdate(input *UpdateSettingsInput) []string {
	var errs []string

	if input.AccountantEmail != nil && !isValidEmail(*input.AccountantEmail) {
		errs = append(errs, "Neplatný formát emailové adresy účetní")
	}
	if input.CpdFee != nil && *input.CpdFee <= 0 {
		errs = append(errs, "Poplatek za CPD musí být kladné číslo v Kč")
	}
	if input.InvoiceDueDays != nil && (*input.InvoiceDueDays < 1 || *input.InvoiceDueDays > 365) {
		errs = append(errs, "Splatnost faktur musí být mezi 1 a 365 dny")
	}
	if input.PaymentUrgencyDays != nil && (*input.PaymentUrgencyDays < 1 || *input.PaymentUrgencyDays > 365) {
		errs = append(errs, "Lhůta pro urgenci platby musí být mezi 1 a 365 dny")
	}
	if input.PaymentUrgencyPeriodDays != nil && (*input.PaymentUrgencyPeriodDays < 1 || *input.PaymentUrgencyPeriodDays > 30) {
		errs = append(errs, "Perioda urgence platby musí být mezi 1 a 30 dny")
	}
	if input.ActionNotificationDays != nil && (*input.ActionNotificationDays < 0 || *input.ActionNotificationDays > 365) {
		errs = append(errs, "Lhůta upozornění na akci musí být mezi 0 a 365 dny")
	}
	if input.LastActionNotificationHours != nil && (*input.LastActionNotificationHours < 0 || *input.LastActionNotificationHours > 8760) {
		errs = append(errs, "Lhůta posledního upozornění musí být mezi 0 a 8760 hodinami (1 rok)")
	}
	if input.SurveyReminderDays != nil && (*input.SurveyReminderDays < 0 || *input.SurveyReminderDays > 365) {
		errs = append(errs, "Lhůta pro připomenutí dotazníku musí být mezi 0 a 365 dny")
	}
	if input.CpdYearsCount != nil && (*input.CpdYearsCount < 1 || *input.CpdYearsCount > 10) {
		errs = append(errs, "Počet let součtu CPD musí být mezi 1 a 10 lety")
	}
	if input.CpdClosureUrgencyDays != nil && (*input.CpdClosureUrgencyDays < 1 || *input.CpdClosureUrgencyDays > 365) {
		errs = append(errs, "Lhůta urgence uzávěrky CPD musí být mezi 1 a 365 dny")
	}
	if input.CpdClosureUrgencyPeriodDays != nil && (*input.CpdClosureUrgencyPeriodDays < 1 || *input.CpdClosureUrgencyPeriodDays > 30) {
		errs = append(errs, "Perioda urgence uzávěrky CPD musí být mezi 1 a 30 dny")
	}
	if input.InvoiceSeriesIssued != nil && !IsValidInvoiceSeries(*input.InvoiceSeriesIssued) {
		errs = append(errs, "Číselná řada faktur vydaných musí být ve formátu XrrNNN (např. 324123)")
	}
	if input.InvoiceSeriesReceived != nil && !IsValidInvoiceSeries(*input.InvoiceSeriesReceived) {
		errs = append(errs, "Číselná řada daňových dokladů o přijaté platbě musí být ve formátu XrrNNN (např. 124456)")
	}
	if input.InvoiceSeriesSettlement != nil && !IsValidInvoiceSeries(*input.InvoiceSeriesSettlement) {
		errs = append(errs, "Číselná řada faktur zúčtovacích musí být ve formátu XrrNNN (např. 224789)")
	}
	if input.DefaultCertificationYears != nil && (*input.DefaultCertificationYears < 1 || *input.DefaultCertificationYears > 10) {
		errs = append(errs, "Výchozí doba platnosti certifikace musí být mezi 1 a 10 lety")
	}
	if input.CertificationExpiryThresholdDays != nil && (*input.CertificationExpiryThresholdDays < 1 || *input.CertificationExpiryThresholdDays > 365) {
		errs = append(errs, "Práh expirace certifikace musí být mezi 1 a 365 dny")
	}
	if input.DefaultStudentDiscount != nil && (*input.DefaultStudentDiscount < 0 || *input.DefaultStudentDiscount > 100) {
		errs = append(errs, "Výchozí sleva pro studenty musí být mezi 0% a 100%")
	}
	if input.DefaultNonMemberSurcharge != nil && (*input.DefaultNonMemberSurcharge < 0 || *input.DefaultNonMemberSurcharge > 100) {
		errs = append(errs, "Výchozí přirážka pro nečleny musí být mezi 0% a 100%")
	}

	return errs
}

// IsValidInvoiceSeries checks the XrrNNN invoice series format: a series
// digit 1-9, a two-digit year and a three-digit order number 001-999.
func IsValidInvoiceSeries(series string) bool {
	if len(series) != 6 {
		return false
	}
	for _, c := range series {
		if c < '0' || c > '9' {
			return false
		}
	}
	if series[0] == '0' {
		return false
	}
	// order number 000 is not a valid series start
	if series[3] == '0' && series[4] == '0' && series[5] == '0' {
		return false
	}
	return true
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
