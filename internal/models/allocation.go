// allocation.go
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

import (
	"time"

	"gorm.io/datatypes"
)

// AllocationAction tags an audit entry
type AllocationAction string

const (
	AllocationAssigned AllocationAction = "assigned"
	AllocationRevoked  AllocationAction = "revoked"
)

// Valid reports whether a is a known action
func (a AllocationAction) Valid() bool {
	return a == AllocationAssigned || a == AllocationRevoked
}

// WorkerAllocation assigns a worker to a station on a date.
// AllocationDate is kept as YYYY-MM-DD text so it compares and orders the same on every dialect.
type WorkerAllocation struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint64         `gorm:"not null;index" json:"user_id"`
	StationID      uint64         `gorm:"not null;index:idx_allocation_date_station" json:"station_id"`
	AllocationDate string         `gorm:"type:varchar(10);not null;index:idx_allocation_date_station" json:"allocation_date"`
	StartTime      datatypes.Time `gorm:"not null" json:"start_time"`
	EndTime        datatypes.Time `gorm:"not null" json:"end_time"`
	Notes          string         `gorm:"size:1024" json:"notes"`
	ShiftID        *uint64        `gorm:"index" json:"shift_id"`
	CreatedBy      *uint64        `json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Display fields filled by joined reads
	Username    string `gorm:"->;-:migration" json:"username,omitempty"`
	FirstName   string `gorm:"->;-:migration" json:"first_name,omitempty"`
	LastName    string `gorm:"->;-:migration" json:"last_name,omitempty"`
	StationName string `gorm:"->;-:migration" json:"station_name,omitempty"`
	ShiftName   string `gorm:"->;-:migration" json:"shift_name,omitempty"`

	User    *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Station *Station `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Shift   *Shift   `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// AllocationAudit is an append-only record of allocation changes.
// It has no foreign keys so it outlives the rows it describes.
type AllocationAudit struct {
	ID             uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AllocationID   uint64           `gorm:"not null;index" json:"allocation_id"`
	BatchID        string           `gorm:"type:char(36);index" json:"batch_id"`
	Action         AllocationAction `gorm:"size:16;not null" json:"action"`
	UserID         uint64           `gorm:"not null" json:"user_id"`
	StationID      uint64           `gorm:"not null" json:"station_id"`
	AllocationDate string           `gorm:"type:varchar(10);not null" json:"allocation_date"`
	PerformedBy    *uint64          `json:"performed_by"`
	Details        JSON             `json:"details"`
	CreatedAt      time.Time        `json:"created_at"`
}

// TableName overrides the table name for WorkerAllocation
func (WorkerAllocation) TableName() string {
	return "worker_allocations"
}

// TableName overrides the table name for AllocationAudit
func (AllocationAudit) TableName() string {
	return "allocation_audits"
}
