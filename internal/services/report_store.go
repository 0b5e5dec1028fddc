// report_store.go
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
	"time"

	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/models"
	"github.com/localnerve/floorsdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// StationCompletion is the number of completed visits at a station
type StationCompletion struct {
	StationID      uint64 `json:"station_id"`
	StationName    string `json:"station_name"`
	CompletedCount int64  `json:"completed_count"`
}

// EmployeeCompletion is the number of completed visits by a worker
type EmployeeCompletion struct {
	WorkerID       uint64 `json:"worker_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CompletedCount int64  `json:"completed_count"`
}

// StationVisit is one station log entry of a product with the whole days spent there
type StationVisit struct {
	StationID   uint64     `json:"station_id"`
	StationName string     `json:"station_name"`
	InTime      time.Time  `json:"in_time"`
	OutTime     *time.Time `json:"out_time"`
	DaysSpent   int        `json:"days_spent"`
	WorkerID    *uint64    `json:"worker_id"`
}

// WeekdayCompletion is the completion count of a station on one weekday
type WeekdayCompletion struct {
	Weekday        string `json:"weekday"`
	StationName    string `json:"station_name"`
	CompletedCount int64  `json:"completed_count"`
}

// ReportStore runs read-only aggregates over product_station_logs
type ReportStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReportStore creates a ReportStore on the given handle
func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db, now: time.Now}
}

// StationCompletions counts completed logs per station with out_time in [from, to], most first
func (s *ReportStore) StationCompletions(ctx context.Context, from, to string) ([]StationCompletion, error) {
	const op = "stationCompletions"

	start, end, err := dayRange(op, from, to)
	if err != nil {
		return nil, err
	}

	rows := []StationCompletion{}
	err = s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "report:station-completions")).
		Table("product_station_logs AS l").
		Select("l.station_id, s.station_name, COUNT(*) AS completed_count").
		Joins("JOIN stations s ON s.id = l.station_id").
		Where("l.status = ? AND l.out_time BETWEEN ? AND ?", models.LogCompleted, start, end).
		Group("l.station_id, s.station_name").
		Order("completed_count DESC").
		Order("l.station_id").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return rows, nil
}

// EmployeeCompletions counts completed logs per worker with out_time in [from, to], most first
func (s *ReportStore) EmployeeCompletions(ctx context.Context, from, to string) ([]EmployeeCompletion, error) {
	const op = "employeeCompletions"

	start, end, err := dayRange(op, from, to)
	if err != nil {
		return nil, err
	}

	rows := []EmployeeCompletion{}
	err = s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "report:employee-completions")).
		Table("product_station_logs AS l").
		Select("l.worker_id, u.first_name, u.last_name, COUNT(*) AS completed_count").
		Joins("JOIN users u ON u.id = l.worker_id").
		Where("l.status = ? AND l.out_time BETWEEN ? AND ?", models.LogCompleted, start, end).
		Group("l.worker_id, u.first_name, u.last_name").
		Order("completed_count DESC").
		Order("l.worker_id").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}
	return rows, nil
}

// ProductDetails returns every station visit of a product by in_time. An open visit
// counts its days up to now.
func (s *ReportStore) ProductDetails(ctx context.Context, productID uint64) ([]StationVisit, error) {
	const op = "productDetails"

	if productID == 0 {
		return nil, types.Validation(op, "productId is required")
	}

	visits := []StationVisit{}
	err := s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "report:product-details")).
		Table("product_station_logs AS l").
		Select("l.station_id, s.station_name, l.in_time, l.out_time, l.worker_id").
		Joins("JOIN stations s ON s.id = l.station_id").
		Where("l.product_id = ?", productID).
		Order("l.in_time").
		Order("l.id").
		Scan(&visits).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}

	now := s.now().UTC()
	for i := range visits {
		until := now
		if visits[i].OutTime != nil {
			until = *visits[i].OutTime
		}
		visits[i].DaysSpent = wholeDays(visits[i].InTime, until)
	}
	return visits, nil
}

// WeeklyCompletions counts completed logs per weekday and station, Monday first then by station name
func (s *ReportStore) WeeklyCompletions(ctx context.Context, from, to string) ([]WeekdayCompletion, error) {
	const op = "weeklyCompletions"

	start, end, err := dayRange(op, from, to)
	if err != nil {
		return nil, err
	}

	var logs []struct {
		StationName string
		OutTime     time.Time
	}
	err = s.db.WithContext(ctx).
		Clauses(hints.Comment("select", "report:weekly-completions")).
		Table("product_station_logs AS l").
		Select("s.station_name, l.out_time").
		Joins("JOIN stations s ON s.id = l.station_id").
		Where("l.status = ? AND l.out_time BETWEEN ? AND ?", models.LogCompleted, start, end).
		Scan(&logs).Error
	if err != nil {
		return nil, database.Classify(op, err)
	}

	type key struct {
		day     int
		station string
	}
	counts := map[key]int64{}
	for _, l := range logs {
		counts[key{mondayIndex(l.OutTime.UTC().Weekday()), l.StationName}]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].station < keys[j].station
	})

	rows := make([]WeekdayCompletion, len(keys))
	for i, k := range keys {
		rows[i] = WeekdayCompletion{
			Weekday:        time.Weekday((k.day + 1) % 7).String(),
			StationName:    k.station,
			CompletedCount: counts[k],
		}
	}
	return rows, nil
}

// dayRange turns inclusive YYYY-MM-DD bounds into [from 00:00:00, to 23:59:59] in UTC
func dayRange(op, from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, types.Validation(op, "from and to (YYYY-MM-DD) are required")
	}
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, types.Validation(op, "from must be YYYY-MM-DD")
	}
	last, err := time.Parse(dateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, types.Validation(op, "to must be YYYY-MM-DD")
	}
	if last.Before(start) {
		return time.Time{}, time.Time{}, types.Validation(op, "from must not be after to")
	}
	return start, last.Add(24*time.Hour - time.Second), nil
}

// wholeDays truncates the elapsed time to whole days, never negative
func wholeDays(from, until time.Time) int {
	d := until.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// mondayIndex maps Monday..Sunday to 0..6
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
