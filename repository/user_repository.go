package repository

import (
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) CreateProfile(tx *gorm.DB, p *entity.Profile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmailAndOTP(email, otp string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ? AND otp = ?", email, otp).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SetRefreshToken overwrites the stored refresh token, last-issued-wins.
func (r *UserRepository) SetRefreshToken(userID uint, token string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *UserRepository) SetOTP(userID uint, otp string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("otp", otp).Error
}

// SetPasswordAndClearOTP makes the OTP single-use.
func (r *UserRepository) SetPasswordAndClearOTP(userID uint, hashed string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{"password": hashed, "otp": nil}).Error
}

func (r *UserRepository) UpdateNames(userID uint, firstName, lastName *string) error {
	updates := map[string]any{}
	if firstName != nil {
		updates["first_name"] = *firstName
	}
	if lastName != nil {
		updates["last_name"] = *lastName
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// GetOrCreateProfile covers users persisted before the profile step existed.
func (r *UserRepository) GetOrCreateProfile(userID uint) (*entity.Profile, error) {
	var p entity.Profile
	err := r.DB.Where(entity.Profile{UserID: userID}).FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) UpdateProfilePhone(userID uint, phone string) error {
	p, err := r.GetOrCreateProfile(userID)
	if err != nil {
		return err
	}
	return r.DB.Model(p).Update("phone", phone).Error
}
