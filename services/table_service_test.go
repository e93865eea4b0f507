package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
)

func newTableService(t *testing.T) (*TableService, *repository.TableRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewTableRepository(db)
	return NewTableService(repo), repo
}

func TestBookAvailableTable(t *testing.T) {
	svc, repo := newTableService(t)
	tbl := seedTable(t, repo.DB, "5", entity.TableAvailable)
	when := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)

	booked, err := svc.Book(tbl.ID, "Alice", when)
	require.NoError(t, err)

	assert.Equal(t, entity.TableBooked, booked.Status)
	require.NotNil(t, booked.CustomerName)
	assert.Equal(t, "Alice", *booked.CustomerName)
	require.NotNil(t, booked.BookingTime)
	assert.True(t, booked.BookingTime.Equal(when))
}

func TestBookNonAvailableTableConflicts(t *testing.T) {
	svc, repo := newTableService(t)
	tbl := seedTable(t, repo.DB, "5", entity.TableAvailable)

	_, err := svc.Book(tbl.ID, "Alice", time.Now())
	require.NoError(t, err)

	// Second booking before Free must conflict and leave the table as-is.
	_, err = svc.Book(tbl.ID, "Bob", time.Now())
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindConflict, ae.Kind)

	got, err := repo.Get(tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableBooked, got.Status)
	require.NotNil(t, got.CustomerName)
	assert.Equal(t, "Alice", *got.CustomerName)
}

func TestBookOccupiedTableConflicts(t *testing.T) {
	svc, repo := newTableService(t)
	tbl := seedTable(t, repo.DB, "7", entity.TableOccupied)

	_, err := svc.Book(tbl.ID, "Alice", time.Now())
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindConflict, ae.Kind)
}

func TestFreeClearsBookingDetails(t *testing.T) {
	svc, repo := newTableService(t)
	tbl := seedTable(t, repo.DB, "5", entity.TableAvailable)

	_, err := svc.Book(tbl.ID, "Alice", time.Now())
	require.NoError(t, err)

	freed, err := svc.Free(tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, freed.Status)
	assert.Nil(t, freed.CustomerName)
	assert.Nil(t, freed.BookingTime)
}

func TestFreeWorksFromAnyState(t *testing.T) {
	svc, repo := newTableService(t)
	tbl := seedTable(t, repo.DB, "9", entity.TableOccupied)

	freed, err := svc.Free(tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, freed.Status)
}

// A direct status edit to Available must clear the booking fields too; the
// normalization lives on the save path, not on the Free action.
func TestSaveNormalizesAvailableTable(t *testing.T) {
	_, repo := newTableService(t)
	tbl := seedTable(t, repo.DB, "5", entity.TableAvailable)

	name := "Alice"
	when := time.Now()
	tbl.Status = entity.TableBooked
	tbl.CustomerName = &name
	tbl.BookingTime = &when
	require.NoError(t, repo.Save(tbl))

	tbl.Status = entity.TableAvailable
	require.NoError(t, repo.Save(tbl))

	got, err := repo.Get(tbl.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CustomerName)
	assert.Nil(t, got.BookingTime)
}

func TestBookUnknownTable(t *testing.T) {
	svc, _ := newTableService(t)
	_, err := svc.Book(999, "Alice", time.Now())
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}
