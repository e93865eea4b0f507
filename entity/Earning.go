package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Earning exists iff its order is currently Completed. It is maintained by
// the order write path, never created directly by a client.
type Earning struct {
	ID      uint `gorm:"primarykey" json:"id"`
	OrderID uint `gorm:"uniqueIndex;not null" json:"order"`

	Date        time.Time       `json:"date"`
	CompletedAt *time.Time      `json:"completed_at"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
}
