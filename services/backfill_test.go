package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

func TestBackfillEarnings(t *testing.T) {
	svc, db := newOrderService(t)
	earnings := repository.NewEarningRepository(db)
	burger := seedDish(t, db, "Burger", "10.00")

	completed, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Status:       entity.OrderCompleted,
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = svc.Create(&CreateOrderReq{
		CustomerName: "Bob",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Simulate a completed order that never got its earning.
	orphan, err := svc.Create(&CreateOrderReq{
		CustomerName: "Carol",
		Status:       entity.OrderCompleted,
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NoError(t, db.Where("order_id = ?", orphan.ID).Delete(&entity.Earning{}).Error)

	dry, err := BackfillEarnings(db, earnings, true)
	require.NoError(t, err)
	assert.Equal(t, 1, dry.Created)
	assert.Equal(t, 1, dry.Updated)
	assert.EqualValues(t, 0, earningCount(t, db, orphan.ID), "dry run writes nothing")

	res, err := BackfillEarnings(db, earnings, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)

	var e entity.Earning
	require.NoError(t, db.Where("order_id = ?", orphan.ID).First(&e).Error)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("30.00")))
	assert.EqualValues(t, 1, earningCount(t, db, completed.ID))
}
