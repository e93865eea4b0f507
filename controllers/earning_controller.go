package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/services"
)

// EarningController is read-only: earnings are derived by the order write
// path, never posted by clients.
type EarningController struct {
	Repo *repository.EarningRepository
	Perf *services.PerformanceService
}

func NewEarningController(repo *repository.EarningRepository, perf *services.PerformanceService) *EarningController {
	return &EarningController{Repo: repo, Perf: perf}
}

func (ct *EarningController) List(c *gin.Context) {
	earnings, err := ct.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, earnings)
}

func (ct *EarningController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	e, err := ct.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Error(c, apperr.NotFound("earning %d not found", id))
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, e)
}

// GET /earnings/performance/
func (ct *EarningController) Performance(c *gin.Context) {
	report, err := ct.Perf.Report()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}
