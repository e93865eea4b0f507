package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

// PerformanceService serves the dashboard aggregate. Read-only; everything
// is derived from orders, items and earnings as they stand.
type PerformanceService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewPerformanceService(db *gorm.DB, repo *repository.OrderRepository) *PerformanceService {
	return &PerformanceService{DB: db, Repo: repo}
}

type OverallPerformance struct {
	Revenue       decimal.Decimal `json:"revenue"`
	TotalCustomer int64           `json:"total_customer"`
	EventCount    int64           `json:"event_count"`
}

type DailySales struct {
	Date       string          `json:"date"`
	DailyTotal decimal.Decimal `json:"daily_total"`
}

type TodaysPerformance struct {
	TodayEarning  decimal.Decimal `json:"today_earning"`
	InProgress    int64           `json:"in_progress"`
	TotalCustomer int64           `json:"total_customer"`
	TotalDishes   int64           `json:"total_dishes"`
	ActiveOrders  int64           `json:"active_orders"`
}

type PopularDish struct {
	DishName string `json:"dish_name"`
	Count    int64  `json:"count"`
}

type PerformanceReport struct {
	OverallPerformance OverallPerformance `json:"overall_performance"`
	SalesDetails       []DailySales       `json:"sales_details"`
	TodaysPerformance  TodaysPerformance  `json:"todays_performance"`
	RecentOrders       []OrderOut         `json:"recent_orders"`
	PopularDishes      []PopularDish      `json:"popular_dishes"`
}

func (s *PerformanceService) Report() (*PerformanceReport, error) {
	now := time.Now()
	dayStart := dateOf(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	windowStart := dayStart.AddDate(0, 0, -30)

	todaysOrders := func() *gorm.DB {
		return s.DB.Model(&entity.Order{}).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd)
	}

	var revenue decimal.Decimal
	if err := todaysOrders().
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}

	var totalCustomers int64
	if err := todaysOrders().
		Distinct("customer_name").
		Count(&totalCustomers).Error; err != nil {
		return nil, err
	}

	var eventCount int64
	if err := todaysOrders().Count(&eventCount).Error; err != nil {
		return nil, err
	}

	var sales []DailySales
	if err := s.DB.Model(&entity.Order{}).
		Select("DATE(created_at) AS date, SUM(total_amount) AS daily_total").
		Where("created_at >= ?", windowStart).
		Group("DATE(created_at)").
		Order("date").
		Scan(&sales).Error; err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []DailySales{}
	}

	var inProgress int64
	if err := s.DB.Model(&entity.Order{}).
		Where("status = ?", entity.OrderInProgress).
		Count(&inProgress).Error; err != nil {
		return nil, err
	}

	var activeOrders int64
	if err := s.DB.Model(&entity.Order{}).
		Where("status IN ?", []string{entity.OrderPending, entity.OrderInProgress}).
		Count(&activeOrders).Error; err != nil {
		return nil, err
	}

	var totalDishes int64
	if err := s.DB.Model(&entity.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", dayStart, dayEnd).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&totalDishes).Error; err != nil {
		return nil, err
	}

	recent, err := s.Repo.RecentOrders(5)
	if err != nil {
		return nil, err
	}
	recentOut := make([]OrderOut, 0, len(recent))
	for i := range recent {
		recentOut = append(recentOut, *OrderToOut(&recent[i]))
	}

	// Popularity counts order lines, not quantities.
	var popular []PopularDish
	if err := s.DB.Model(&entity.OrderItem{}).
		Select("dishes.name AS dish_name, COUNT(order_items.id) AS count").
		Joins("JOIN dishes ON dishes.id = order_items.dish_id").
		Group("dishes.name").
		Order("count DESC").
		Limit(5).
		Scan(&popular).Error; err != nil {
		return nil, err
	}
	if popular == nil {
		popular = []PopularDish{}
	}

	return &PerformanceReport{
		OverallPerformance: OverallPerformance{
			Revenue:       revenue,
			TotalCustomer: totalCustomers,
			EventCount:    eventCount,
		},
		SalesDetails: sales,
		TodaysPerformance: TodaysPerformance{
			TodayEarning:  revenue,
			InProgress:    inProgress,
			TotalCustomer: totalCustomers,
			TotalDishes:   totalDishes,
			ActiveOrders:  activeOrders,
		},
		RecentOrders:  recentOut,
		PopularDishes: popular,
	}, nil
}
