package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/services"
)

type TableRequest struct {
	TableNumber  string     `json:"table_number" binding:"required"`
	Seats        int        `json:"seats" binding:"required"`
	Status       string     `json:"status"`
	CustomerName *string    `json:"customer_name"`
	BookingTime  *time.Time `json:"booking_time"`
}

type BookTableRequest struct {
	CustomerName string `json:"customer_name"`
	BookingTime  string `json:"booking_time"`
}

type TableController struct {
	Repo *repository.TableRepository
	Svc  *services.TableService
}

func NewTableController(repo *repository.TableRepository, svc *services.TableService) *TableController {
	return &TableController{Repo: repo, Svc: svc}
}

func (ct *TableController) List(c *gin.Context) {
	tables, err := ct.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

func (ct *TableController) Detail(c *gin.Context) {
	t, ok := ct.fetch(c)
	if !ok {
		return
	}
	resp.OK(c, t)
}

func (ct *TableController) Create(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status := req.Status
	if status == "" {
		status = entity.TableAvailable
	}
	if !validTableStatus(status) {
		resp.Error(c, apperr.Validation("invalid status: %s", status))
		return
	}
	t := entity.Table{
		TableNumber:  req.TableNumber,
		Seats:        req.Seats,
		Status:       status,
		CustomerName: req.CustomerName,
		BookingTime:  req.BookingTime,
	}
	if err := ct.Repo.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// Update goes through the save path so setting a table back to Available
// clears any stale booking details.
func (ct *TableController) Update(c *gin.Context) {
	t, ok := ct.fetch(c)
	if !ok {
		return
	}
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Status != "" && !validTableStatus(req.Status) {
		resp.Error(c, apperr.Validation("invalid status: %s", req.Status))
		return
	}
	t.TableNumber = req.TableNumber
	t.Seats = req.Seats
	if req.Status != "" {
		t.Status = req.Status
	}
	t.CustomerName = req.CustomerName
	t.BookingTime = req.BookingTime
	if err := ct.Repo.Save(t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}

func (ct *TableController) Delete(c *gin.Context) {
	t, ok := ct.fetch(c)
	if !ok {
		return
	}
	if err := ct.Repo.Delete(t.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": t.ID})
}

// POST /tables/:id/book/
func (ct *TableController) Book(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req BookTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.CustomerName == "" || req.BookingTime == "" {
		resp.Error(c, apperr.Validation("customer name and booking time are required"))
		return
	}
	bookingTime, err := time.Parse(time.RFC3339, req.BookingTime)
	if err != nil {
		resp.Error(c, apperr.Validation("booking_time must be RFC3339"))
		return
	}

	t, err := ct.Svc.Book(id, req.CustomerName, bookingTime)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /tables/:id/free/
func (ct *TableController) Free(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	t, err := ct.Svc.Free(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

func (ct *TableController) fetch(c *gin.Context) (*entity.Table, bool) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return nil, false
	}
	t, err := ct.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Error(c, apperr.NotFound("table %d not found", id))
			return nil, false
		}
		resp.ServerError(c, err)
		return nil, false
	}
	return t, true
}

func validTableStatus(s string) bool {
	switch s {
	case entity.TableAvailable, entity.TableOccupied, entity.TableBooked:
		return true
	}
	return false
}
