package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

func TestPerformanceReport(t *testing.T) {
	svc, db := newOrderService(t)
	perf := NewPerformanceService(db, repository.NewOrderRepository(db))
	burger := seedDish(t, db, "Burger", "10.00")
	soda := seedDish(t, db, "Soda", "3.00")

	_, err := svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Status:       entity.OrderInProgress,
		Items: []OrderItemIn{
			{DishID: burger.ID, Quantity: 2},
			{DishID: soda.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	_, err = svc.Create(&CreateOrderReq{
		CustomerName: "Bob",
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Same customer twice still counts once.
	_, err = svc.Create(&CreateOrderReq{
		CustomerName: "Alice",
		Status:       entity.OrderCompleted,
		Items:        []OrderItemIn{{DishID: burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	report, err := perf.Report()
	require.NoError(t, err)

	assert.True(t, report.OverallPerformance.Revenue.Equal(decimal.RequireFromString("43.00")),
		"revenue = %s", report.OverallPerformance.Revenue)
	assert.EqualValues(t, 2, report.OverallPerformance.TotalCustomer)
	assert.EqualValues(t, 3, report.OverallPerformance.EventCount)

	assert.True(t, report.TodaysPerformance.TodayEarning.Equal(report.OverallPerformance.Revenue))
	assert.EqualValues(t, 1, report.TodaysPerformance.InProgress)
	assert.EqualValues(t, 2, report.TodaysPerformance.ActiveOrders, "Pending plus In Progress")
	assert.EqualValues(t, 5, report.TodaysPerformance.TotalDishes)

	require.Len(t, report.SalesDetails, 1)
	assert.True(t, report.SalesDetails[0].DailyTotal.Equal(decimal.RequireFromString("43.00")))

	require.Len(t, report.RecentOrders, 3)
	require.NotEmpty(t, report.PopularDishes)
	// Burger appears on three order lines, soda on one.
	assert.Equal(t, "Burger", report.PopularDishes[0].DishName)
	assert.EqualValues(t, 3, report.PopularDishes[0].Count)
}

func TestPerformanceReportEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	perf := NewPerformanceService(db, repository.NewOrderRepository(db))

	report, err := perf.Report()
	require.NoError(t, err)

	assert.True(t, report.OverallPerformance.Revenue.IsZero())
	assert.Zero(t, report.OverallPerformance.EventCount)
	assert.Empty(t, report.SalesDetails)
	assert.Empty(t, report.RecentOrders)
	assert.Empty(t, report.PopularDishes)
}
