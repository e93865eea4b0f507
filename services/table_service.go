package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

// Book moves Available -> Booked; any other starting state is a conflict
// and leaves the table untouched.
func (s *TableService) Book(tableID uint, customerName string, bookingTime time.Time) (*entity.Table, error) {
	table, err := s.get(tableID)
	if err != nil {
		return nil, err
	}
	if table.Status != entity.TableAvailable {
		return nil, apperr.Conflict("table is not available for booking")
	}

	table.Status = entity.TableBooked
	table.CustomerName = &customerName
	table.BookingTime = &bookingTime
	if err := s.Repo.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

// Free works from any state; the BeforeSave hook clears the booking fields.
func (s *TableService) Free(tableID uint) (*entity.Table, error) {
	table, err := s.get(tableID)
	if err != nil {
		return nil, err
	}
	table.Status = entity.TableAvailable
	if err := s.Repo.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) get(tableID uint) (*entity.Table, error) {
	table, err := s.Repo.Get(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table %d not found", tableID)
		}
		return nil, err
	}
	return table, nil
}
