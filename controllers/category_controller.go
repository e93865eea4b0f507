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

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryController struct {
	Repo *repository.MenuRepository
}

func NewCategoryController(repo *repository.MenuRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

func (ct *CategoryController) List(c *gin.Context) {
	categories, err := ct.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

func (ct *CategoryController) Detail(c *gin.Context) {
	cat, ok := ct.fetch(c)
	if !ok {
		return
	}
	resp.OK(c, cat)
}

func (ct *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Name: req.Name}
	if err := ct.Repo.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

func (ct *CategoryController) Update(c *gin.Context) {
	cat, ok := ct.fetch(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat.Name = req.Name
	if err := ct.Repo.SaveCategory(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

func (ct *CategoryController) Delete(c *gin.Context) {
	cat, ok := ct.fetch(c)
	if !ok {
		return
	}
	if err := ct.Repo.DeleteCategory(cat.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": cat.ID})
}

func (ct *CategoryController) fetch(c *gin.Context) (*entity.Category, bool) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return nil, false
	}
	cat, err := ct.Repo.GetCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Error(c, apperr.NotFound("category %d not found", id))
			return nil, false
		}
		resp.ServerError(c, err)
		return nil, false
	}
	return cat, true
}
