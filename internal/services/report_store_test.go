// report_store_test.go
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
	"testing"
	"time"

	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/services"
	"github.com/localnerve/floorsdb/internal/testutil"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/gorm"
)

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func seedLog(t *testing.T, db *gorm.DB, stationID uint64, worker uint64, in time.Time, out *time.Time) {
	t.Helper()
	log := models.ProductStationLog{
		ProductID: 1,
		StationID: stationID,
		InTime:    in,
		OutTime:   out,
		Status:    models.LogInProgress,
	}
	if worker != 0 {
		log.WorkerID = &worker
	}
	if out != nil {
		log.Status = models.LogCompleted
	}
	if err := db.Create(&log).Error; err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

// seedLogs: 2024-01-15 is a Monday
func seedLogs(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedFloor(t, db)
	// Assembly (5): two completions Monday, one Wednesday
	seedLog(t, db, 5, 10, at("2024-01-14 08:00"), ptrTime(at("2024-01-15 09:00")))
	seedLog(t, db, 5, 11, at("2024-01-15 08:00"), ptrTime(at("2024-01-15 23:30")))
	seedLog(t, db, 5, 10, at("2024-01-16 08:00"), ptrTime(at("2024-01-17 10:00")))
	// Boxing (6): one completion Sunday, one outside the range, one open
	seedLog(t, db, 6, 12, at("2024-01-20 08:00"), ptrTime(at("2024-01-21 12:00")))
	seedLog(t, db, 6, 12, at("2024-01-01 08:00"), ptrTime(at("2024-01-02 12:00")))
	seedLog(t, db, 6, 0, at("2024-01-21 13:00"), nil)
}

func TestStationCompletions(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedLogs(t, db)
	store := services.NewReportStore(db)

	rows, err := store.StationCompletions(context.Background(), "2024-01-15", "2024-01-21")
	if err != nil {
		t.Fatalf("StationCompletions failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 stations, got %+v", rows)
	}
	if rows[0].StationID != 5 || rows[0].StationName != "Assembly" || rows[0].CompletedCount != 3 {
		t.Errorf("Expected Assembly with 3, got %+v", rows[0])
	}
	if rows[1].StationID != 6 || rows[1].CompletedCount != 1 {
		t.Errorf("Expected Boxing with 1, got %+v", rows[1])
	}
}

func TestEmployeeCompletions(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedLogs(t, db)
	store := services.NewReportStore(db)

	rows, err := store.EmployeeCompletions(context.Background(), "2024-01-15", "2024-01-21")
	if err != nil {
		t.Fatalf("EmployeeCompletions failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 workers, got %+v", rows)
	}
	if rows[0].WorkerID != 10 || rows[0].FirstName != "Ana" || rows[0].CompletedCount != 2 {
		t.Errorf("Expected Ana with 2, got %+v", rows[0])
	}
}

func TestWeeklyCompletions(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedLogs(t, db)
	store := services.NewReportStore(db)

	rows, err := store.WeeklyCompletions(context.Background(), "2024-01-15", "2024-01-21")
	if err != nil {
		t.Fatalf("WeeklyCompletions failed: %v", err)
	}
	want := []services.WeekdayCompletion{
		{Weekday: "Monday", StationName: "Assembly", CompletedCount: 2},
		{Weekday: "Wednesday", StationName: "Assembly", CompletedCount: 1},
		{Weekday: "Sunday", StationName: "Boxing", CompletedCount: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %+v", len(want), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("Row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestProductDetails(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedLogs(t, db)
	store := services.NewReportStore(db)

	visits, err := store.ProductDetails(context.Background(), 1)
	if err != nil {
		t.Fatalf("ProductDetails failed: %v", err)
	}
	if len(visits) != 6 {
		t.Fatalf("Expected 6 visits, got %d", len(visits))
	}
	if !visits[0].InTime.Equal(at("2024-01-01 08:00")) {
		t.Errorf("Expected visits ordered by in_time, first is %s", visits[0].InTime)
	}
	// 2024-01-14 08:00 to 2024-01-15 09:00 is one whole day
	if visits[1].DaysSpent != 1 {
		t.Errorf("Expected 1 day spent, got %d", visits[1].DaysSpent)
	}
	open := visits[len(visits)-1]
	if open.OutTime != nil || open.WorkerID != nil {
		t.Errorf("Expected the open visit last, got %+v", open)
	}
	if open.DaysSpent < 1 {
		t.Errorf("Expected an open visit to count days until now, got %d", open.DaysSpent)
	}

	if _, err := store.ProductDetails(context.Background(), 0); !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestReportRangeValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := services.NewReportStore(db)
	ctx := context.Background()

	ranges := [][2]string{{"", "2024-01-01"}, {"2024-01-01", ""}, {"01/01/2024", "2024-01-02"}, {"2024-02-01", "2024-01-01"}}
	for _, r := range ranges {
		if _, err := store.StationCompletions(ctx, r[0], r[1]); !types.IsKind(err, types.KindValidation) {
			t.Errorf("Expected validation error for %v, got %v", r, err)
		}
	}
}
