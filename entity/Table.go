package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	TableAvailable = "Available"
	TableOccupied  = "Occupied"
	TableBooked    = "Booked"
)

type Table struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	TableNumber string `gorm:"size:10;uniqueIndex;not null" json:"table_number"`
	Seats       int    `json:"seats"`
	Status      string `gorm:"size:10;default:Available" json:"status"`

	CustomerName *string    `gorm:"size:100" json:"customer_name"`
	BookingTime  *time.Time `json:"booking_time"`
}

// BeforeSave keeps the invariant that an available table carries no
// booking details, whichever write path set the status.
func (t *Table) BeforeSave(tx *gorm.DB) error {
	if t.Status == TableAvailable {
		t.CustomerName = nil
		t.BookingTime = nil
	}
	return nil
}
