package config

import (
	"log"

	"vetkom-cpd-admin/internal/adapters/persistence/models"
	"vetkom-cpd-admin/internal/core/services"

	"gorm.io/gorm"
)

// SeedData seeds the settings singleton and the default templates
func SeedData(db *gorm.DB) error {
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedTemplates(db); err != nil {
		return err
	}

	log.Println("✅ Seed data applied successfully")
	return nil
}

// seedSettings creates the settings singleton on first boot
func seedSettings(db *gorm.DB) error {
	var existing models.SystemSettings
	err := db.First(&existing, models.SettingsRecordID).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	if err := db.Create(services.DefaultSettings()).Error; err != nil {
		return err
	}
	log.Println("   Created system settings singleton")
	return nil
}

func seedTemplates(db *gorm.DB) error {
	templates := []models.EmailTemplate{
		{
			Name:         "Notifikace o akci",
			Subject:      "Informace o vzdělávací akci",
			Body:         "Dobrý den,\n\ninformujeme Vás o konání akce <nazev_akce>\nDatum: <datum_konani>\nCena: <cena_celkem> Kč\n\nS pozdravem,\ntým VETKOM",
			Placeholders: "nazev_akce,datum_konani,cena_celkem",
			TemplateType: models.TemplateTypeNotification,
		},
		{
			Name:         "Faktura za akci",
			Subject:      "Faktura za vzdělávací akci",
			Body:         "Faktura\n\nFakturujeme Vám za účast na akci <nazev_akce>\nDatum konání: <datum_konani>\nCelková cena: <cena_celkem> Kč\nLékař: <cele_jmeno_lekare>",
			Placeholders: "nazev_akce,datum_konani,cena_celkem,cele_jmeno_lekare",
			TemplateType: models.TemplateTypeDocument,
		},
	}

	for _, t := range templates {
		var existing models.EmailTemplate
		err := db.Where("name = ?", t.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := db.Create(&t).Error; err != nil {
			return err
		}
		log.Printf("   Created template: %s", t.Name)
	}
	return nil
}
