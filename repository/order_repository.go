package repository

import (
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) SaveOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items.Dish").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Items.Dish").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items.Dish").Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) RecentOrders(limit int) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items.Dish").Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

// DeleteOrder cascades to the order's items and earning.
func (r *OrderRepository) DeleteOrder(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.Earning{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, id).Error
	})
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) SaveItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Save(oi).Error
}

// DeleteItemsForOrder clears the item set before a full replacement.
func (r *OrderRepository) DeleteItemsForOrder(tx *gorm.DB, orderID uint) error {
	return tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

func (r *OrderRepository) ListItems() ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	err := r.DB.Preload("Dish").Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetItem(id uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := r.DB.Preload("Dish").First(&oi, id).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.OrderItem{}, id).Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetDishTx(tx *gorm.DB, id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := tx.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *OrderRepository) GetTableTx(tx *gorm.DB, id uint) (*entity.Table, error) {
	var t entity.Table
	if err := tx.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
