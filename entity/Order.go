package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending    = "Pending"
	OrderInProgress = "In Progress"
	OrderReady      = "Ready"
	OrderCompleted  = "Completed"
	OrderCancelled  = "Cancelled"

	OrderTypeDineIn   = "Dine In"
	OrderTypeTakeaway = "Takeaway"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderInProgress, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func ValidOrderType(s string) bool {
	return s == OrderTypeDineIn || s == OrderTypeTakeaway
}

type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	TableID      *uint  `json:"table"`
	Table        *Table `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Status       string `gorm:"size:20;default:Pending" json:"status"`
	OrderType    string `gorm:"size:10;default:Dine In" json:"order_type"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	Items   []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Earning *Earning    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
