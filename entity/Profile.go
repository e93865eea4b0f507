package entity

import (
	"time"
)

type Profile struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user"`

	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	ProfilePic  string    `gorm:"default:default-user.jpg" json:"profile_pic"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
}
