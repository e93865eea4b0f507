package entity

import (
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID      uint `gorm:"primarykey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order"`
	DishID  uint `gorm:"not null" json:"dish"`
	Dish    Dish `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
	// Line total snapshotted at creation: dish price at that moment times
	// quantity. Later dish price edits do not touch it.
	Price decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
}
