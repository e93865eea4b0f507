package entity

import (
	"github.com/shopspring/decimal"
)

type Dish struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	CategoryID  uint            `gorm:"not null" json:"category"`
	IsVeg       bool            `gorm:"default:true" json:"is_veg"`

	// Deleting a dish takes its order lines with it.
	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
