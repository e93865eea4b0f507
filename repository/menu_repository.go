package repository

import (
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) SaveCategory(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

// DeleteCategory takes the category's dishes with it.
func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var dishIDs []uint
		if err := tx.Model(&entity.Dish{}).Where("category_id = ?", id).
			Pluck("id", &dishIDs).Error; err != nil {
			return err
		}
		if len(dishIDs) > 0 {
			if err := tx.Where("dish_id IN ?", dishIDs).Delete(&entity.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entity.Dish{}, dishIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
}

// ---------------- Dishes ----------------

func (r *MenuRepository) ListDishes() ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetDish(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *MenuRepository) CreateDish(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *MenuRepository) SaveDish(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

// DeleteDish cascades to order items referencing it. Accepted data-loss
// behavior, mirrored from the FK policy.
func (r *MenuRepository) DeleteDish(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Dish{}, id).Error
	})
}
