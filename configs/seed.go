package configs

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/logger"
)

// SeedAdmin creates the initial staff account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Skipped when the env vars are unset or the account already exists.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.L().Info("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		admin := entity.User{
			Email:     cfg.AdminEmail,
			Username:  cfg.AdminEmail,
			Password:  string(hash),
			FirstName: "Admin",
			LastName:  "Seed",
			IsStaff:   true,
			IsActive:  true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Profile{UserID: admin.ID}).Error
	})
}
