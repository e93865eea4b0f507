package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")
	soda := seedDish(t, db, "Soda", "3.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items: []OrderItemIn{
			{DishID: burger.ID, Quantity: 2},
			{DishID: soda.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("23.00")),
		"total = %s", out.TotalAmount)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Price.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, out.Items[1].Price.Equal(decimal.RequireFromString("3.00")))
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.Equal(t, "Burger", out.Items[0].DishName)
}

func TestOrderItemPriceIsSnapshot(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Raising the dish price must not touch the stored line price.
	require.NoError(t, db.Model(&entity.Dish{}).Where("id = ?", burger.ID).
		Update("price", decimal.RequireFromString("99.00")).Error)

	reloaded, err := svc.Detail(out.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Items[0].Price.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestCreateOrderRejectsBadQuantity(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")

	_, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 0}},
	})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders, "no partial order may survive a failed create")
}

func TestCreateOrderUnknownDishLeavesNoPartialState(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")

	_, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items: []OrderItemIn{
			{DishID: burger.ID, Quantity: 1},
			{DishID: 9999, Quantity: 1},
		},
	})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderMarksTableOccupied(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")
	tbl := seedTable(t, db, "5", entity.TableBooked)

	// Unconditional: not gated on prior status or order type.
	_, err := svc.Create(&CreateOrderReq{
		TableID:      &tbl.ID,
		CustomerName: "Alice",
		OrderType:    entity.OrderTypeTakeaway,
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	var got entity.Table
	require.NoError(t, db.First(&got, tbl.ID).Error)
	assert.Equal(t, entity.TableOccupied, got.Status)
}

func TestCreateOrderUnknownTable(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")
	missing := uint(404)

	_, err := svc.Create(&CreateOrderReq{
		TableID:      &missing,
		CustomerName: "Alice",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestCreateCompletedOrderMaterializesEarning(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Status:       entity.OrderCompleted,
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	var e entity.Earning
	require.NoError(t, db.Where("order_id = ?", out.ID).First(&e).Error)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("30.00")))
	assert.NotNil(t, e.CompletedAt)
}

func TestUpdateReplacesItemSetInFull(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")
	soda := seedDish(t, db, "Soda", "3.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	newItems := []OrderItemIn{{DishID: soda.ID, Quantity: 4}}
	updated, err := svc.Update(out.ID, &UpdateOrderReq{Items: &newItems})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, soda.ID, updated.Items[0].DishID)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("12.00")))

	var itemCount int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", out.ID).Count(&itemCount).Error)
	assert.EqualValues(t, 1, itemCount, "old rows fully gone")
}

func TestUpdateWithoutItemsLeavesTotalUntouched(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	name := "Bob"
	updated, err := svc.Update(out.ID, &UpdateOrderReq{CustomerName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Bob", updated.CustomerName)
	assert.True(t, updated.TotalAmount.Equal(out.TotalAmount))
	require.Len(t, updated.Items, 1)

	var stored entity.Order
	require.NoError(t, db.First(&stored, out.ID).Error)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestEarningTracksCompletedBoundary(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")
	soda := seedDish(t, db, "Soda", "3.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items: []OrderItemIn{
			{DishID: burger.ID, Quantity: 2},
			{DishID: soda.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, earningCount(t, db, out.ID))

	setStatus := func(status string) {
		t.Helper()
		_, err := svc.Update(out.ID, &UpdateOrderReq{Status: &status})
		require.NoError(t, err)
	}

	setStatus(entity.OrderCompleted)
	assert.EqualValues(t, 1, earningCount(t, db, out.ID))
	var e entity.Earning
	require.NoError(t, db.Where("order_id = ?", out.ID).First(&e).Error)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("23.00")))

	// Un-completing retracts the earning; repeated flips never duplicate it.
	setStatus(entity.OrderCancelled)
	assert.EqualValues(t, 0, earningCount(t, db, out.ID))

	setStatus(entity.OrderCompleted)
	setStatus(entity.OrderPending)
	setStatus(entity.OrderCompleted)
	assert.EqualValues(t, 1, earningCount(t, db, out.ID))

	// Status churn without crossing the boundary leaves it alone.
	setStatus(entity.OrderCompleted)
	assert.EqualValues(t, 1, earningCount(t, db, out.ID))
}

func TestEarningAmountFollowsLastCompletion(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")
	soda := seedDish(t, db, "Soda", "3.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	completed := entity.OrderCompleted
	pending := entity.OrderPending
	_, err = svc.Update(out.ID, &UpdateOrderReq{Status: &completed})
	require.NoError(t, err)

	_, err = svc.Update(out.ID, &UpdateOrderReq{Status: &pending})
	require.NoError(t, err)

	// Replace items and complete again: amount mirrors the new total.
	newItems := []OrderItemIn{{DishID: soda.ID, Quantity: 5}}
	_, err = svc.Update(out.ID, &UpdateOrderReq{Status: &completed, Items: &newItems})
	require.NoError(t, err)

	var e entity.Earning
	require.NoError(t, db.Where("order_id = ?", out.ID).First(&e).Error)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("15.00")))
	assert.EqualValues(t, 1, earningCount(t, db, out.ID))
}

func TestUpdateUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	status := entity.OrderCompleted
	_, err := svc.Update(12345, &UpdateOrderReq{Status: &status})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestDeleteOrderCascades(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedDish(t, db, "Burger", "10.00")

	out, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Status:       entity.OrderCompleted,
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(out.ID))

	var items, earnings int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", out.ID).Count(&items).Error)
	require.NoError(t, db.Model(&entity.Earning{}).Where("order_id = ?", out.ID).Count(&earnings).Error)
	assert.Zero(t, items)
	assert.Zero(t, earnings)
}
