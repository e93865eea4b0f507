package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
)

type EarningRepository struct {
	DB *gorm.DB
}

func NewEarningRepository(db *gorm.DB) *EarningRepository {
	return &EarningRepository{DB: db}
}

func (r *EarningRepository) List() ([]entity.Earning, error) {
	var out []entity.Earning
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *EarningRepository) Get(id uint) (*entity.Earning, error) {
	var e entity.Earning
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertForOrder overwrites the order's earning if one exists; at most one
// earning per order, re-entrant completion included.
func (r *EarningRepository) UpsertForOrder(tx *gorm.DB, orderID uint, date time.Time, completedAt time.Time, amount decimal.Decimal) error {
	var e entity.Earning
	err := tx.Where("order_id = ?", orderID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		e = entity.Earning{OrderID: orderID, Date: date, CompletedAt: &completedAt, Amount: amount}
		return tx.Create(&e).Error
	}
	if err != nil {
		return err
	}
	e.Date = date
	e.CompletedAt = &completedAt
	e.Amount = amount
	return tx.Save(&e).Error
}

// DeleteForOrder is idempotent; a missing earning is not an error.
func (r *EarningRepository) DeleteForOrder(tx *gorm.DB, orderID uint) error {
	return tx.Where("order_id = ?", orderID).Delete(&entity.Earning{}).Error
}

func (r *EarningRepository) CountForOrder(orderID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Earning{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
