// shift_store_test.go
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

package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/testutil"
	"github.com/localnerve/floorsdb/internal/types"
)

func decodeShift(t *testing.T, payload string) services.ShiftInput {
	t.Helper()
	var input services.ShiftInput
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		t.Fatalf("Failed to decode shift payload: %v", err)
	}
	return input
}

func TestShiftLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewShiftStore(db)
	ctx := context.Background()

	shift, err := store.CreateShift(ctx, decodeShift(t, `{"name": "Morning", "start_time": "06:00", "end_time": "14:00:00", "is_active": true}`))
	if err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}
	if shift.ID == 0 {
		t.Fatal("Expected a shift id")
	}
	if shift.StartTime.String() != "06:00:00" || shift.EndTime.String() != "14:00:00" {
		t.Errorf("Unexpected window %s-%s", shift.StartTime, shift.EndTime)
	}

	updated, err := store.UpdateShift(ctx, shift.ID, decodeShift(t, `{"name": "Early", "start_time": "05:30", "end_time": "13:30", "is_active": 0}`))
	if err != nil {
		t.Fatalf("UpdateShift failed: %v", err)
	}
	if updated.Name != "Early" || updated.IsActive {
		t.Errorf("Expected inactive Early shift, got %+v", updated)
	}

	got, err := store.GetShift(ctx, shift.ID)
	if err != nil {
		t.Fatalf("GetShift failed: %v", err)
	}
	if got.StartTime.String() != "05:30:00" {
		t.Errorf("Expected stored start 05:30:00, got %s", got.StartTime)
	}

	if _, err := store.CreateShift(ctx, decodeShift(t, `{"name": "Night", "start_time": "22:00", "end_time": "06:00", "is_active": "1"}`)); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}
	shifts, err := store.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts failed: %v", err)
	}
	if len(shifts) != 2 || shifts[0].ID != shift.ID || !shifts[1].IsActive {
		t.Errorf("Unexpected shift list: %+v", shifts)
	}

	if err := store.DeleteShift(ctx, shift.ID); err != nil {
		t.Fatalf("DeleteShift failed: %v", err)
	}
	if err := store.DeleteShift(ctx, shift.ID); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found on second delete, got %v", err)
	}
	if _, err := store.UpdateShift(ctx, shift.ID, decodeShift(t, `{"name": "X", "start_time": "01:00", "end_time": "02:00", "is_active": true}`)); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found on update, got %v", err)
	}
}

func TestShiftValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewShiftStore(db)
	ctx := context.Background()

	payloads := []string{
		`{"start_time": "06:00", "end_time": "14:00", "is_active": true}`,
		`{"name": "A", "end_time": "14:00", "is_active": true}`,
		`{"name": "A", "start_time": "06:00", "end_time": "14:00"}`,
		`{"name": "A", "start_time": "25:00", "end_time": "14:00", "is_active": true}`,
		`{"name": "A", "start_time": "06", "end_time": "14:00", "is_active": true}`,
	}
	for _, p := range payloads {
		if _, err := store.CreateShift(ctx, decodeShift(t, p)); !types.IsKind(err, types.KindValidation) {
			t.Errorf("Expected validation error for %s, got %v", p, err)
		}
	}
}
