package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Earnings *repository.EarningRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, earnings *repository.EarningRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, Earnings: earnings}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	DishID   uint `json:"dish"`
	Quantity int  `json:"quantity"`
}

type CreateOrderReq struct {
	TableID      *uint         `json:"table"`
	CustomerName string        `json:"customer_name" binding:"required"`
	Status       string        `json:"status"`
	OrderType    string        `json:"order_type"`
	Items        []OrderItemIn `json:"items" binding:"required"`
}

type UpdateOrderReq struct {
	TableID      *uint          `json:"table"`
	CustomerName *string        `json:"customer_name"`
	Status       *string        `json:"status"`
	OrderType    *string        `json:"order_type"`
	Items        *[]OrderItemIn `json:"items"`
}

type OrderItemOut struct {
	ID       uint            `json:"id"`
	DishID   uint            `json:"dish"`
	DishName string          `json:"dish_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderOut struct {
	ID           uint            `json:"id"`
	TableID      *uint           `json:"table"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	OrderType    string          `json:"order_type"`
	CreatedAt    time.Time       `json:"created_at"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Items        []OrderItemOut  `json:"items"`
}

func OrderToOut(o *entity.Order) *OrderOut {
	items := make([]OrderItemOut, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemOut{
			ID:       it.ID,
			DishID:   it.DishID,
			DishName: it.Dish.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return &OrderOut{
		ID:           o.ID,
		TableID:      o.TableID,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		OrderType:    o.OrderType,
		CreatedAt:    o.CreatedAt,
		TotalAmount:  o.TotalAmount,
		Items:        items,
	}
}

// ----- Create -----

// Create persists the order, its snapshot-priced items and the recomputed
// total in one transaction. A dine-in table is marked Occupied whatever its
// prior status; an order born Completed materializes its earning before the
// transaction commits.
func (s *OrderService) Create(req *CreateOrderReq) (*OrderOut, error) {
	status := req.Status
	if status == "" {
		status = entity.OrderPending
	}
	orderType := req.OrderType
	if orderType == "" {
		orderType = entity.OrderTypeDineIn
	}
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.Validation("invalid status: %s", status)
	}
	if !entity.ValidOrderType(orderType) {
		return nil, apperr.Validation("invalid order_type: %s", orderType)
	}

	var created *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TableID:      req.TableID,
			CustomerName: req.CustomerName,
			Status:       status,
			OrderType:    orderType,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total, err := s.writeItems(tx, order.ID, req.Items)
		if err != nil {
			return err
		}
		order.TotalAmount = total
		if err := s.Repo.SaveOrder(tx, &order); err != nil {
			return err
		}

		if req.TableID != nil {
			table, err := s.Repo.GetTableTx(tx, *req.TableID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("table %d not found", *req.TableID)
				}
				return err
			}
			table.Status = entity.TableOccupied
			if err := tx.Save(table).Error; err != nil {
				return err
			}
		}

		if order.Status == entity.OrderCompleted {
			now := time.Now()
			if err := s.Earnings.UpsertForOrder(tx, order.ID, dateOf(now), now, order.TotalAmount); err != nil {
				return err
			}
		}

		created, err = s.Repo.GetOrderTx(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return OrderToOut(created), nil
}

// ----- Update -----

// Update applies scalar changes, replaces the item set in full when one is
// supplied, then reconciles the earning across the Completed boundary.
func (s *OrderService) Update(orderID uint, req *UpdateOrderReq) (*OrderOut, error) {
	if req.Status != nil && !entity.ValidOrderStatus(*req.Status) {
		return nil, apperr.Validation("invalid status: %s", *req.Status)
	}
	if req.OrderType != nil && !entity.ValidOrderType(*req.OrderType) {
		return nil, apperr.Validation("invalid order_type: %s", *req.OrderType)
	}

	var updated *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order %d not found", orderID)
			}
			return err
		}
		prevStatus := order.Status

		if req.TableID != nil {
			if _, err := s.Repo.GetTableTx(tx, *req.TableID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("table %d not found", *req.TableID)
				}
				return err
			}
			order.TableID = req.TableID
		}
		if req.CustomerName != nil {
			order.CustomerName = *req.CustomerName
		}
		if req.Status != nil {
			order.Status = *req.Status
		}
		if req.OrderType != nil {
			order.OrderType = *req.OrderType
		}

		if req.Items != nil {
			if err := s.Repo.DeleteItemsForOrder(tx, order.ID); err != nil {
				return err
			}
			total, err := s.writeItems(tx, order.ID, *req.Items)
			if err != nil {
				return err
			}
			order.TotalAmount = total
		}

		if err := s.Repo.SaveOrder(tx, &order); err != nil {
			return err
		}

		switch {
		case prevStatus != entity.OrderCompleted && order.Status == entity.OrderCompleted:
			now := time.Now()
			if err := s.Earnings.UpsertForOrder(tx, order.ID, dateOf(now), now, order.TotalAmount); err != nil {
				return err
			}
		case prevStatus == entity.OrderCompleted && order.Status != entity.OrderCompleted:
			if err := s.Earnings.DeleteForOrder(tx, order.ID); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.Repo.GetOrderTx(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return OrderToOut(updated), nil
}

// writeItems validates and persists the item lines, returning the order
// total. Prices are snapshotted line totals: dish price now, times quantity.
func (s *OrderService) writeItems(tx *gorm.DB, orderID uint, items []OrderItemIn) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, in := range items {
		if in.Quantity <= 0 {
			return decimal.Zero, apperr.Validation("quantity must be a positive integer")
		}
		dish, err := s.Repo.GetDishTx(tx, in.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Zero, apperr.NotFound("dish %d not found", in.DishID)
			}
			return decimal.Zero, err
		}
		linePrice := dish.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		oi := entity.OrderItem{
			OrderID:  orderID,
			DishID:   dish.ID,
			Quantity: in.Quantity,
			Price:    linePrice,
		}
		if err := s.Repo.CreateItem(tx, &oi); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(linePrice)
	}
	return total, nil
}

// ----- List / Detail / Delete -----

func (s *OrderService) List() ([]OrderOut, error) {
	orders, err := s.Repo.ListOrders()
	if err != nil {
		return nil, err
	}
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, *OrderToOut(&orders[i]))
	}
	return out, nil
}

func (s *OrderService) Detail(orderID uint) (*OrderOut, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order %d not found", orderID)
		}
		return nil, err
	}
	return OrderToOut(o), nil
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order %d not found", orderID)
		}
		return err
	}
	return s.Repo.DeleteOrder(orderID)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
