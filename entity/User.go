package entity

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	OTP          *string `gorm:"column:otp;size:6" json:"-"`
	RefreshToken *string `gorm:"size:512" json:"-"`

	IsStaff  bool `json:"is_staff"`
	IsActive bool `gorm:"default:true" json:"is_active"`

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
