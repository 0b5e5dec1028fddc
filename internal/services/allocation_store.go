// allocation_store.go
//
// A factory floor management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of floorsdb.
// floorsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// floorsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with floorsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/metrics"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Allocation window used when an entry gives no times
var (
	defaultStartTime = datatypes.NewTime(8, 0, 0, 0)
	defaultEndTime   = datatypes.NewTime(16, 0, 0, 0)
)

// AllocationInput is one allocation entry of a create or update request
type AllocationInput struct {
	UserID         types.FlexUint64 `json:"user_id"`
	StationID      types.FlexUint64 `json:"station_id"`
	AllocationDate string           `json:"allocation_date"`
	StartTime      string           `json:"start_time"`
	EndTime        string           `json:"end_time"`
	Notes          string           `json:"notes"`
	ShiftID        types.FlexUint64 `json:"shift_id"`
}

// AllocationFilter narrows ListAllocations; zero values match everything
type AllocationFilter struct {
	Date      string
	StationID uint64
	UserID    uint64
}

// Board maps station id to the workers allocated there, in allocation order
type Board map[uint64][]uint64

// BoardInput is the replace-board payload: {date, product, allocations: {stationId: [workerIds]}}
type BoardInput struct {
	Date        string                        `json:"date"`
	Product     string                        `json:"product"`
	Allocations map[string][]types.FlexUint64 `json:"allocations"`
}

// AvailableWorker is an active user with no allocation on the requested date
type AvailableWorker struct {
	ID          uint64  `json:"id"`
	Username    string  `json:"username"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Designation *string `json:"designation"`
}

// AllocationStore owns worker_allocations and allocation_audits.
// Every write appends audit rows in the same transaction.
type AllocationStore struct {
	db *gorm.DB
}

// NewAllocationStore creates an AllocationStore on the given handle
func NewAllocationStore(db *gorm.DB) *AllocationStore {
	return &AllocationStore{db: db}
}

// CreateAllocations inserts a batch of allocations. A station that already holds an
// allocation on an entry's date fails the whole batch with a conflict naming the stations.
func (s *AllocationStore) CreateAllocations(ctx context.Context, entries []AllocationInput, actor uint64) ([]models.WorkerAllocation, error) {
	const op = "createAllocations"

	if len(entries) == 0 {
		return nil, types.Validation(op, "at least one allocation is required")
	}
	rows := make([]models.WorkerAllocation, len(entries))
	for i, in := range entries {
		row, err := allocationFromInput(op, in)
		if err != nil {
			return nil, types.Validation(op, "allocation %d: %s", i+1, validationMessage(err))
		}
		row.CreatedBy = actorRef(actor)
		rows[i] = row
	}

	batch := uuid.NewString()
	var audits []models.AllocationAudit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAllocationRefs(tx, op, rows); err != nil {
			return err
		}

		taken, err := occupiedStations(tx, rows)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return types.Conflict(op, "stations already allocated on this date", map[string][]uint64{"station_ids": taken})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		audits = make([]models.AllocationAudit, len(rows))
		for i, row := range rows {
			audits[i] = newAudit(batch, models.AllocationAssigned, row, actor, nil)
		}
		return tx.Create(&audits).Error
	})
	if err != nil {
		return nil, database.Classify(op, err)
	}

	recordAudits(audits)
	return rows, nil
}

// ListAllocations returns allocations with user, station and shift display fields,
// newest date first then by station name
func (s *AllocationStore) ListAllocations(ctx context.Context, filter AllocationFilter) ([]models.WorkerAllocation, error) {
	const op = "listAllocations"

	if filter.Date != "" && !validDate(filter.Date) {
		return nil, types.Validation(op, "date must be YYYY-MM-DD")
	}

	query := s.allocationQuery(ctx)
	if filter.Date != "" {
		query = query.Where("worker_allocations.allocation_date = ?", filter.Date)
	}
	if filter.StationID != 0 {
		query = query.Where("worker_allocations.station_id = ?", filter.StationID)
	}
	if filter.UserID != 0 {
		query = query.Where("worker_allocations.user_id = ?", filter.UserID)
	}

	var allocations []models.WorkerAllocation
	err := query.
		Order("worker_allocations.allocation_date DESC").
		Order("stations.station_name").
		Order("worker_allocations.id").
		Find(&allocations).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return nonNil(allocations), nil
}

// GetAllocationByID returns one allocation with its display fields
func (s *AllocationStore) GetAllocationByID(ctx context.Context, id uint64) (*models.WorkerAllocation, error) {
	const op = "getAllocationById"

	var allocation models.WorkerAllocation
	err := s.allocationQuery(ctx).Where("worker_allocations.id = ?", id).Take(&allocation).Error
	if err != nil {
		if isNotFound(err) {
			return nil, types.NotFound(op, "allocation %d not found", id)
		}
		return nil, database.Classify(op, err)
	}
	return &allocation, nil
}

// UpdateAllocation overwrites the allocation, auditing the old assignment as
// revoked and the new one as assigned
func (s *AllocationStore) UpdateAllocation(ctx context.Context, id uint64, input AllocationInput, actor uint64) error {
	const op = "updateAllocation"

	next, err := allocationFromInput(op, input)
	if err != nil {
		return err
	}

	batch := uuid.NewString()
	var audits []models.AllocationAudit

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.WorkerAllocation
		if err := tx.First(&current, id).Error; err != nil {
			if isNotFound(err) {
				return types.NotFound(op, "allocation %d not found", id)
			}
			return err
		}

		if err := checkAllocationRefs(tx, op, []models.WorkerAllocation{next}); err != nil {
			return err
		}

		moved := current.StationID != next.StationID || current.AllocationDate != next.AllocationDate
		if moved {
			taken, err := occupiedStations(tx, []models.WorkerAllocation{next})
			if err != nil {
				return err
			}
			if len(taken) > 0 {
				return types.Conflict(op, "stations already allocated on this date", map[string][]uint64{"station_ids": taken})
			}
		}

		prior := current
		current.UserID = next.UserID
		current.StationID = next.StationID
		current.AllocationDate = next.AllocationDate
		current.StartTime = next.StartTime
		current.EndTime = next.EndTime
		current.Notes = next.Notes
		current.ShiftID = next.ShiftID
		if err := tx.Save(&current).Error; err != nil {
			return err
		}

		audits = []models.AllocationAudit{
			newAudit(batch, models.AllocationRevoked, prior, actor, map[string]string{"reason": "updated"}),
			newAudit(batch, models.AllocationAssigned, current, actor, map[string]string{"reason": "updated"}),
		}
		return tx.Create(&audits).Error
	})
	if err != nil {
		return database.Classify(op, err)
	}

	recordAudits(audits)
	return nil
}

// DeleteAllocation removes the allocation and audits the revoked assignment
func (s *AllocationStore) DeleteAllocation(ctx context.Context, id uint64, actor uint64) error {
	const op = "deleteAllocation"

	var audits []models.AllocationAudit
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.WorkerAllocation
		if err := tx.First(&current, id).Error; err != nil {
			if isNotFound(err) {
				return types.NotFound(op, "allocation %d not found", id)
			}
			return err
		}
		if err := tx.Delete(&current).Error; err != nil {
			return err
		}

		audits = []models.AllocationAudit{
			newAudit(uuid.NewString(), models.AllocationRevoked, current, actor, map[string]string{"reason": "deleted"}),
		}
		return tx.Create(&audits).Error
	})
	if err != nil {
		return database.Classify(op, err)
	}

	recordAudits(audits)
	return nil
}

// ListAvailableWorkers returns active users with no allocation on the date at any station.
// A given station id must exist.
func (s *AllocationStore) ListAvailableWorkers(ctx context.Context, date string, stationID uint64) ([]AvailableWorker, error) {
	const op = "listAvailableWorkers"

	if !validDate(date) {
		return nil, types.Validation(op, "date must be YYYY-MM-DD")
	}

	db := s.db.WithContext(ctx)
	if stationID != 0 {
		if err := stationExists(db, op, stationID); err != nil {
			return nil, database.Classify(op, err)
		}
	}

	allocated := db.Model(&models.WorkerAllocation{}).
		Select("user_id").
		Where("allocation_date = ?", date)

	workers := []AvailableWorker{}
	err := db.Model(&models.User{}).
		Select("id", "username", "first_name", "last_name", "designation").
		Where("status = ?", models.UserActive).
		Where("id NOT IN (?)", allocated).
		Order("first_name").
		Order("last_name").
		Scan(&workers).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return workers, nil
}

// DeleteAllocationsByDate removes every allocation on the date, auditing each, and returns the count
func (s *AllocationStore) DeleteAllocationsByDate(ctx context.Context, date string, actor uint64) (int, error) {
	const op = "deleteAllocationsByDate"

	if !validDate(date) {
		return 0, types.Validation(op, "date must be YYYY-MM-DD")
	}

	batch := uuid.NewString()
	var audits []models.AllocationAudit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.WorkerAllocation
		if err := tx.Where("allocation_date = ?", date).Order("id").Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		if err := tx.Where("allocation_date = ?", date).Delete(&models.WorkerAllocation{}).Error; err != nil {
			return err
		}

		audits = make([]models.AllocationAudit, len(existing))
		for i, a := range existing {
			audits[i] = newAudit(batch, models.AllocationRevoked, a, actor, map[string]string{"reason": "date cleared"})
		}
		return tx.Create(&audits).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	recordAudits(audits)
	return len(audits), nil
}

// ListAudit returns audit rows oldest first, optionally for one allocation
func (s *AllocationStore) ListAudit(ctx context.Context, allocationID uint64) ([]models.AllocationAudit, error) {
	query := s.db.WithContext(ctx).Order("id")
	if allocationID != 0 {
		query = query.Where("allocation_id = ?", allocationID)
	}

	var audits []models.AllocationAudit
	if err := query.Find(&audits).Error; err != nil {
		return nil, database.Classify("listAudit", err)
	}
	return nonNil(audits), nil
}

// GetBoard returns the workers allocated to each of the product's stations on the date
func (s *AllocationStore) GetBoard(ctx context.Context, date, productName string) (Board, error) {
	const op = "getBoard"

	if !validDate(date) {
		return nil, types.Validation(op, "date must be YYYY-MM-DD")
	}

	db := s.db.WithContext(ctx)
	product, err := productByName(db, op, productName)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		StationID uint64
		UserID    uint64
	}
	err = db.Model(&models.WorkerAllocation{}).
		Select("worker_allocations.station_id, worker_allocations.user_id").
		Joins("JOIN stations ON stations.id = worker_allocations.station_id").
		Where("worker_allocations.allocation_date = ? AND stations.product_id = ?", date, product.ID).
		Order("worker_allocations.id").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}

	board := Board{}
	for _, r := range rows {
		board[r.StationID] = append(board[r.StationID], r.UserID)
	}
	return board, nil
}

// ReplaceBoard replaces the allocations of every station named in the input for the
// product and date: existing ones are revoked and the given workers assigned, in one
// transaction. Returns the number of workers assigned.
func (s *AllocationStore) ReplaceBoard(ctx context.Context, input BoardInput, actor uint64) (int, error) {
	const op = "replaceBoard"

	if !validDate(input.Date) || strings.TrimSpace(input.Product) == "" || input.Allocations == nil {
		return 0, types.Validation(op, "date (YYYY-MM-DD), product and allocations are required")
	}

	stationIDs, assignments := parseBoard(input.Allocations)

	batch := uuid.NewString()
	var audits []models.AllocationAudit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := productByName(tx, op, input.Product)
		if err != nil {
			return err
		}
		if len(stationIDs) == 0 {
			return nil
		}

		var owned []uint64
		if err := tx.Model(&models.Station{}).
			Where("id IN ? AND product_id = ?", stationIDs, product.ID).
			Pluck("id", &owned).Error; err != nil {
			return err
		}
		if foreign := difference(stationIDs, owned); len(foreign) > 0 {
			return &types.StoreError{
				Kind:    types.KindValidation,
				Op:      op,
				Message: "stations do not belong to product " + product.Name,
				Details: map[string][]uint64{"station_ids": foreign},
			}
		}

		var existing []models.WorkerAllocation
		if err := tx.Where("allocation_date = ? AND station_id IN ?", input.Date, stationIDs).
			Order("id").
			Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			if err := tx.Where("allocation_date = ? AND station_id IN ?", input.Date, stationIDs).
				Delete(&models.WorkerAllocation{}).Error; err != nil {
				return err
			}
		}
		for _, a := range existing {
			audits = append(audits, newAudit(batch, models.AllocationRevoked, a, actor, map[string]string{"product": product.Name}))
		}

		if len(assignments) > 0 {
			rows := make([]models.WorkerAllocation, len(assignments))
			for i, pair := range assignments {
				rows[i] = models.WorkerAllocation{
					UserID:         pair[1],
					StationID:      pair[0],
					AllocationDate: input.Date,
					StartTime:      defaultStartTime,
					EndTime:        defaultEndTime,
					CreatedBy:      actorRef(actor),
				}
			}
			if err := checkAllocationRefs(tx, op, rows); err != nil {
				return err
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
			for _, row := range rows {
				audits = append(audits, newAudit(batch, models.AllocationAssigned, row, actor, map[string]string{"product": product.Name}))
			}
		}

		if len(audits) == 0 {
			return nil
		}
		return tx.Create(&audits).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	recordAudits(audits)
	return len(assignments), nil
}

func (s *AllocationStore) allocationQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.WorkerAllocation{}).
		Select("worker_allocations.*, users.username, users.first_name, users.last_name, " +
			"stations.station_name, COALESCE(shifts.name, '') AS shift_name").
		Joins("JOIN users ON users.id = worker_allocations.user_id").
		Joins("JOIN stations ON stations.id = worker_allocations.station_id").
		Joins("LEFT JOIN shifts ON shifts.id = worker_allocations.shift_id")
}

func allocationFromInput(op string, in AllocationInput) (models.WorkerAllocation, error) {
	if in.StationID == 0 || in.UserID == 0 || in.AllocationDate == "" {
		return models.WorkerAllocation{}, types.Validation(op, "station_id, user_id and allocation_date are required")
	}
	if !validDate(in.AllocationDate) {
		return models.WorkerAllocation{}, types.Validation(op, "allocation_date must be YYYY-MM-DD")
	}

	start, end := defaultStartTime, defaultEndTime
	var err error
	if in.StartTime != "" {
		if start, err = parseTimeOfDay(in.StartTime); err != nil {
			return models.WorkerAllocation{}, types.Validation(op, "start_time: %v", err)
		}
	}
	if in.EndTime != "" {
		if end, err = parseTimeOfDay(in.EndTime); err != nil {
			return models.WorkerAllocation{}, types.Validation(op, "end_time: %v", err)
		}
	}

	row := models.WorkerAllocation{
		UserID:         in.UserID.Uint64(),
		StationID:      in.StationID.Uint64(),
		AllocationDate: in.AllocationDate,
		StartTime:      start,
		EndTime:        end,
		Notes:          in.Notes,
	}
	if in.ShiftID != 0 {
		shiftID := in.ShiftID.Uint64()
		row.ShiftID = &shiftID
	}
	return row, nil
}

// checkAllocationRefs reports the first missing user, station or shift as not found
func checkAllocationRefs(tx *gorm.DB, op string, rows []models.WorkerAllocation) error {
	users := map[uint64]struct{}{}
	stations := map[uint64]struct{}{}
	shifts := map[uint64]struct{}{}
	for _, r := range rows {
		users[r.UserID] = struct{}{}
		stations[r.StationID] = struct{}{}
		if r.ShiftID != nil {
			shifts[*r.ShiftID] = struct{}{}
		}
	}

	checks := []struct {
		label string
		model interface{}
		ids   map[uint64]struct{}
	}{
		{"user", &models.User{}, users},
		{"station", &models.Station{}, stations},
		{"shift", &models.Shift{}, shifts},
	}
	for _, c := range checks {
		if len(c.ids) == 0 {
			continue
		}
		want := keys(c.ids)
		var found []uint64
		if err := tx.Model(c.model).Where("id IN ?", want).Pluck("id", &found).Error; err != nil {
			return err
		}
		if missing := difference(want, found); len(missing) > 0 {
			return types.NotFound(op, "%s %d not found", c.label, missing[0])
		}
	}
	return nil
}

// occupiedStations returns the sorted station ids that already hold an allocation
// on the date of any row targeting them
func occupiedStations(tx *gorm.DB, rows []models.WorkerAllocation) ([]uint64, error) {
	byDate := map[string]map[uint64]struct{}{}
	for _, r := range rows {
		if byDate[r.AllocationDate] == nil {
			byDate[r.AllocationDate] = map[uint64]struct{}{}
		}
		byDate[r.AllocationDate][r.StationID] = struct{}{}
	}

	taken := map[uint64]struct{}{}
	for date, stations := range byDate {
		var ids []uint64
		if err := tx.Model(&models.WorkerAllocation{}).
			Distinct("station_id").
			Where("allocation_date = ? AND station_id IN ?", date, keys(stations)).
			Pluck("station_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			taken[id] = struct{}{}
		}
	}
	return keys(taken), nil
}

// parseBoard returns the sorted station ids of a board payload and its
// (station, worker) pairs in key order. Non-numeric station keys are skipped.
func parseBoard(allocations map[string][]types.FlexUint64) ([]uint64, [][2]uint64) {
	stationIDs := make([]uint64, 0, len(allocations))
	workersByStation := map[uint64][]types.FlexUint64{}
	for key, workers := range allocations {
		id, err := strconv.ParseUint(strings.TrimSpace(key), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		stationIDs = append(stationIDs, id)
		workersByStation[id] = workers
	}
	sort.Slice(stationIDs, func(i, j int) bool { return stationIDs[i] < stationIDs[j] })

	var pairs [][2]uint64
	for _, stationID := range stationIDs {
		seen := map[uint64]bool{}
		for _, w := range workersByStation[stationID] {
			if w == 0 || seen[w.Uint64()] {
				continue
			}
			seen[w.Uint64()] = true
			pairs = append(pairs, [2]uint64{stationID, w.Uint64()})
		}
	}
	return stationIDs, pairs
}

func newAudit(batch string, action models.AllocationAction, a models.WorkerAllocation, actor uint64, details interface{}) models.AllocationAudit {
	audit := models.AllocationAudit{
		AllocationID:   a.ID,
		BatchID:        batch,
		Action:         action,
		UserID:         a.UserID,
		StationID:      a.StationID,
		AllocationDate: a.AllocationDate,
		PerformedBy:    actorRef(actor),
	}
	if details != nil {
		if j, err := models.NewJSON(details); err == nil {
			audit.Details = j
		}
	}
	return audit
}

func recordAudits(audits []models.AllocationAudit) {
	for _, a := range audits {
		metrics.RecordAudit(string(a.Action))
	}
}

func actorRef(actor uint64) *uint64 {
	if actor == 0 {
		return nil
	}
	return &actor
}

func validationMessage(err error) string {
	if se, ok := types.AsStoreError(err); ok {
		return se.Message
	}
	return err.Error()
}

func keys(set map[uint64]struct{}) []uint64 {
	out := make([]uint64, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// difference returns the members of want absent from have, in want order
func difference(want, have []uint64) []uint64 {
	present := make(map[uint64]struct{}, len(have))
	for _, h := range have {
		present[h] = struct{}{}
	}
	var missing []uint64
	for _, w := range want {
		if _, ok := present[w]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}
