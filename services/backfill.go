package services

import (
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

type BackfillResult struct {
	Created int
	Updated int
}

// BackfillEarnings reconciles earnings for every completed order, using the
// order's creation time as the completion time. Dry-run only counts.
func BackfillEarnings(db *gorm.DB, earnings *repository.EarningRepository, dryRun bool) (*BackfillResult, error) {
	var completed []entity.Order
	if err := db.Where("status = ?", entity.OrderCompleted).Find(&completed).Error; err != nil {
		return nil, err
	}

	res := &BackfillResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, order := range completed {
			var count int64
			if err := tx.Model(&entity.Earning{}).
				Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				res.Created++
			} else {
				res.Updated++
			}
			if dryRun {
				continue
			}
			completedAt := order.CreatedAt
			if err := earnings.UpsertForOrder(tx, order.ID, dateOf(completedAt), completedAt, order.TotalAmount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
