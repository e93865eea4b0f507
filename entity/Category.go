package entity

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Dishes []Dish `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
