package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/services"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func (ct *OrderController) List(c *gin.Context) {
	orders, err := ct.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ct *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	out, err := ct.Svc.Detail(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

func (ct *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ct.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

func (ct *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ct.Svc.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

func (ct *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ct.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
