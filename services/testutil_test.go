package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

// Each test gets its own named in-memory database so nothing leaks across
// tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Profile{},
		&entity.Category{}, &entity.Dish{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Earning{},
	))
	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewEarningRepository(db)), db
}

func seedDish(t *testing.T, db *gorm.DB, name, price string) *entity.Dish {
	t.Helper()
	cat := entity.Category{Name: "Mains"}
	require.NoError(t, db.FirstOrCreate(&cat, entity.Category{Name: "Mains"}).Error)
	d := entity.Dish{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(&d).Error)
	return &d
}

func seedTable(t *testing.T, db *gorm.DB, number string, status string) *entity.Table {
	t.Helper()
	tbl := entity.Table{TableNumber: number, Seats: 4, Status: status}
	require.NoError(t, db.Create(&tbl).Error)
	return &tbl
}

func earningCount(t *testing.T, db *gorm.DB, orderID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Earning{}).Where("order_id = ?", orderID).Count(&count).Error)
	return count
}
