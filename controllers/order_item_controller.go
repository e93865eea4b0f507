package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

type OrderItemRequest struct {
	OrderID  uint `json:"order" binding:"required"`
	DishID   uint `json:"dish" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// OrderItemController exposes the flat /order-items/ resource. Price is
// never client-supplied: it is snapshotted from the dish on every write.
// Order totals are only recomputed by the order update path.
type OrderItemController struct {
	Repo *repository.OrderRepository
}

func NewOrderItemController(repo *repository.OrderRepository) *OrderItemController {
	return &OrderItemController{Repo: repo}
}

func (ct *OrderItemController) List(c *gin.Context) {
	items, err := ct.Repo.ListItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

func (ct *OrderItemController) Detail(c *gin.Context) {
	oi, ok := ct.fetch(c)
	if !ok {
		return
	}
	resp.OK(c, oi)
}

func (ct *OrderItemController) Create(c *gin.Context) {
	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	oi := &entity.OrderItem{}
	if err := ct.apply(req, oi); err != nil {
		resp.Error(c, err)
		return
	}
	if err := ct.Repo.CreateItem(ct.Repo.DB, oi); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, oi)
}

func (ct *OrderItemController) Update(c *gin.Context) {
	oi, ok := ct.fetch(c)
	if !ok {
		return
	}
	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ct.apply(req, oi); err != nil {
		resp.Error(c, err)
		return
	}
	if err := ct.Repo.SaveItem(ct.Repo.DB, oi); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, oi)
}

func (ct *OrderItemController) Delete(c *gin.Context) {
	oi, ok := ct.fetch(c)
	if !ok {
		return
	}
	if err := ct.Repo.DeleteItem(oi.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": oi.ID})
}

func (ct *OrderItemController) apply(req OrderItemRequest, oi *entity.OrderItem) error {
	if req.Quantity <= 0 {
		return apperr.Validation("quantity must be a positive integer")
	}
	if _, err := ct.Repo.GetOrder(req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order %d not found", req.OrderID)
		}
		return err
	}
	dish, err := ct.Repo.GetDishTx(ct.Repo.DB, req.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("dish %d not found", req.DishID)
		}
		return err
	}
	oi.OrderID = req.OrderID
	oi.DishID = req.DishID
	oi.Quantity = req.Quantity
	oi.Price = dish.Price.Mul(decimalFromInt(req.Quantity))
	return nil
}

func (ct *OrderItemController) fetch(c *gin.Context) (*entity.OrderItem, bool) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return nil, false
	}
	oi, err := ct.Repo.GetItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Error(c, apperr.NotFound("order item %d not found", id))
			return nil, false
		}
		resp.ServerError(c, err)
		return nil, false
	}
	return oi, true
}
