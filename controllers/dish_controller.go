package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

type DishRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  uint            `json:"category" binding:"required"`
	IsVeg       *bool           `json:"is_veg"`
}

type DishController struct {
	Repo *repository.MenuRepository
}

func NewDishController(repo *repository.MenuRepository) *DishController {
	return &DishController{Repo: repo}
}

func (ct *DishController) List(c *gin.Context) {
	dishes, err := ct.Repo.ListDishes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

func (ct *DishController) Detail(c *gin.Context) {
	d, ok := ct.fetch(c)
	if !ok {
		return
	}
	resp.OK(c, d)
}

func (ct *DishController) Create(c *gin.Context) {
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := ct.buildDish(&req, &entity.Dish{})
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := ct.Repo.CreateDish(d); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, d)
}

// Update edits the dish in place. Existing order lines keep their
// snapshotted prices.
func (ct *DishController) Update(c *gin.Context) {
	d, ok := ct.fetch(c)
	if !ok {
		return
	}
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ct.buildDish(&req, d); err != nil {
		resp.Error(c, err)
		return
	}
	if err := ct.Repo.SaveDish(d); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

func (ct *DishController) Delete(c *gin.Context) {
	d, ok := ct.fetch(c)
	if !ok {
		return
	}
	if err := ct.Repo.DeleteDish(d.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": d.ID})
}

func (ct *DishController) buildDish(req *DishRequest, d *entity.Dish) (*entity.Dish, error) {
	if req.Price.IsNegative() {
		return nil, apperr.Validation("price must be non-negative")
	}
	if _, err := ct.Repo.GetCategory(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category %d not found", req.CategoryID)
		}
		return nil, err
	}
	d.Name = req.Name
	d.Description = req.Description
	d.Price = req.Price
	d.CategoryID = req.CategoryID
	if req.IsVeg != nil {
		d.IsVeg = *req.IsVeg
	}
	return d, nil
}

func (ct *DishController) fetch(c *gin.Context) (*entity.Dish, bool) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return nil, false
	}
	d, err := ct.Repo.GetDish(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Error(c, apperr.NotFound("dish %d not found", id))
			return nil, false
		}
		resp.ServerError(c, err)
		return nil, false
	}
	return d, true
}
