package repository

import (
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("table_number").Find(&out).Error
	return out, err
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

// Save goes through the full entity so the BeforeSave normalization always
// runs.
func (r *TableRepository) Save(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) SaveTx(tx *gorm.DB, t *entity.Table) error {
	return tx.Save(t).Error
}

// Delete nulls the table link on orders that referenced it.
func (r *TableRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Order{}).Where("table_id = ?", id).
			Update("table_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Table{}, id).Error
	})
}
