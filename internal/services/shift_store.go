// shift_store.go
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
	"strings"

	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/gorm"
)

// ShiftInput is the create/update payload for a shift
type ShiftInput struct {
	Name      string           `json:"name"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	IsActive  types.FlexString `json:"is_active"`
}

// ShiftStore owns shifts
type ShiftStore struct {
	db *gorm.DB
}

// NewShiftStore creates a ShiftStore on the given handle
func NewShiftStore(db *gorm.DB) *ShiftStore {
	return &ShiftStore{db: db}
}

// CreateShift inserts a shift and returns it with its new id
func (s *ShiftStore) CreateShift(ctx context.Context, input ShiftInput) (*models.Shift, error) {
	const op = "createShift"

	shift, err := shiftFromInput(op, input)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(shift).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return shift, nil
}

// UpdateShift overwrites every field of the shift
func (s *ShiftStore) UpdateShift(ctx context.Context, id uint64, input ShiftInput) (*models.Shift, error) {
	const op = "updateShift"

	shift, err := shiftFromInput(op, input)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Shift
		if err := tx.First(&current, id).Error; err != nil {
			if isNotFound(err) {
				return types.NotFound(op, "shift %d not found", id)
			}
			return err
		}

		current.Name = shift.Name
		current.StartTime = shift.StartTime
		current.EndTime = shift.EndTime
		current.IsActive = shift.IsActive
		*shift = current
		return tx.Save(shift).Error
	})
	if err != nil {
		return nil, database.Classify(op, err)
	}

	return shift, nil
}

// ListShifts returns every shift ordered by id
func (s *ShiftStore) ListShifts(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := s.db.WithContext(ctx).Order("id").Find(&shifts).Error; err != nil {
		return nil, database.Classify("listShifts", err)
	}
	return nonNil(shifts), nil
}

// GetShift returns one shift
func (s *ShiftStore) GetShift(ctx context.Context, id uint64) (*models.Shift, error) {
	const op = "getShift"

	var shift models.Shift
	if err := s.db.WithContext(ctx).First(&shift, id).Error; err != nil {
		if isNotFound(err) {
			return nil, types.NotFound(op, "shift %d not found", id)
		}
		return nil, database.Classify(op, err)
	}
	return &shift, nil
}

// DeleteShift removes a shift. Allocations that referenced it keep their times.
func (s *ShiftStore) DeleteShift(ctx context.Context, id uint64) error {
	const op = "deleteShift"

	result := s.db.WithContext(ctx).Delete(&models.Shift{}, id)
	if result.Error != nil {
		return database.Classify(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotFound(op, "shift %d not found", id)
	}
	return nil
}

func shiftFromInput(op string, input ShiftInput) (*models.Shift, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.StartTime == "" || input.EndTime == "" || !input.IsActive.Set {
		return nil, types.Validation(op, "name, start_time, end_time and is_active are required")
	}

	start, err := parseTimeOfDay(input.StartTime)
	if err != nil {
		return nil, types.Validation(op, "start_time: %v", err)
	}
	end, err := parseTimeOfDay(input.EndTime)
	if err != nil {
		return nil, types.Validation(op, "end_time: %v", err)
	}

	return &models.Shift{
		Name:      name,
		StartTime: start,
		EndTime:   end,
		IsActive:  truthy(input.IsActive),
	}, nil
}
