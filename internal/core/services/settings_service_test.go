package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vetkom-cpd-admin/internal/adapters/persistence/models"
	"vetkom-cpd-admin/internal/adapters/persistence/repositories"
	"vetkom-cpd-admin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with all tables migrated. The
// database is named after the test so pooled connections share it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()

	db := newTestDB(t)
	repo := repositories.NewSettingsRepository(db)
	require.NoError(t, repo.Create(context.Background(), DefaultSettings()))
	return NewSettingsService(repo)
}

func TestSettingsGetNotSeeded(t *testing.T) {
	service := NewSettingsService(repositories.NewSettingsRepository(newTestDB(t)))

	_, err := service.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrSettingsNotFound)
}

func TestSettingsGetSeeded(t *testing.T) {
	service := newSettingsService(t)

	settings, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SettingsRecordID, settings.ID)
	assert.Equal(t, "ekonom@vetkom.cz", settings.AccountantEmail)
	assert.Equal(t, 500, settings.CpdFee)
	assert.Equal(t, "324123", settings.InvoiceSeriesIssued)
}

func TestSettingsUpdateRejectsInvalidInput(t *testing.T) {
	service := newSettingsService(t)

	_, err := service.Update(context.Background(), &UpdateSettingsInput{
		CpdFee: intPtr(-5),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Poplatek za CPD musí být kladné číslo v Kč"}, verr.Messages)

	// nothing was written
	settings, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, settings.CpdFee)
}

func TestSettingsUpdateMergesPartialInput(t *testing.T) {
	service := newSettingsService(t)

	updated, err := service.Update(context.Background(), &UpdateSettingsInput{
		CpdFee: intPtr(750),
	})
	require.NoError(t, err)
	assert.Equal(t, 750, updated.CpdFee)
	// untouched field keeps its stored value
	assert.Equal(t, "ekonom@vetkom.cz", updated.AccountantEmail)
}

func TestSettingsUpdatePersistsReconciledValues(t *testing.T) {
	service := newSettingsService(t)

	updated, err := service.Update(context.Background(), &UpdateSettingsInput{
		InvoiceDueDays:     intPtr(10),
		PaymentUrgencyDays: intPtr(15),
	})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.PaymentUrgencyDays)

	// the clamped value is what a fresh read returns
	reloaded, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, reloaded.PaymentUrgencyDays)
}

func TestSettingsResetPreservesInvoiceSeriesAndInfoBox(t *testing.T) {
	service := newSettingsService(t)

	_, err := service.Update(context.Background(), &UpdateSettingsInput{
		CpdFee:              intPtr(999),
		InvoiceSeriesIssued: strPtr("924555"),
		InfoBox:             strPtr("Custom note"),
	})
	require.NoError(t, err)

	reset, err := service.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, reset.CpdFee)
	assert.Equal(t, "924555", reset.InvoiceSeriesIssued)
	assert.Equal(t, "Custom note", reset.InfoBox)

	reloaded, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, reloaded.CpdFee)
	assert.Equal(t, "924555", reloaded.InvoiceSeriesIssued)
}

func TestGenerateInvoiceNumber(t *testing.T) {
	service := newSettingsService(t)

	assert.Equal(t, "32412326001", service.GenerateInvoiceNumber("324123", 2026))
	assert.Equal(t, "12445699001", service.GenerateInvoiceNumber("124456", 1999))
}

func TestIsCertificationExpiringSoon(t *testing.T) {
	service := newSettingsService(t)
	ctx := context.Background()

	// default threshold is 30 days
	soon, err := service.IsCertificationExpiringSoon(ctx, time.Now().AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.True(t, soon)

	far, err := service.IsCertificationExpiringSoon(ctx, time.Now().AddDate(0, 0, 60))
	require.NoError(t, err)
	assert.False(t, far)
}

func TestPriceHelpers(t *testing.T) {
	service := newSettingsService(t)
	ctx := context.Background()

	// default discount and surcharge are both 30 %
	student, err := service.StudentPrice(ctx, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 700, student, 0.001)

	nonMember, err := service.NonMemberPrice(ctx, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1300, nonMember, 0.001)
}
