// station_log.go
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

package models

import "time"

// LogStatus is the state of a product's visit to a station
type LogStatus string

const (
	LogInProgress LogStatus = "in_progress"
	LogCompleted  LogStatus = "completed"
)

// ProductStationLog records a product passing through a station. Read-only for the stores.
type ProductStationLog struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint64     `gorm:"not null;index" json:"product_id"`
	StationID uint64     `gorm:"not null;index" json:"station_id"`
	WorkerID  *uint64    `gorm:"index" json:"worker_id"`
	InTime    time.Time  `gorm:"not null;index:idx_psl_times" json:"in_time"`
	OutTime   *time.Time `gorm:"index:idx_psl_times" json:"out_time"`
	Status    LogStatus  `gorm:"size:16;not null;index" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Station *Station `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Worker  *User    `gorm:"foreignKey:WorkerID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName overrides the table name for ProductStationLog
func (ProductStationLog) TableName() string {
	return "product_station_logs"
}
