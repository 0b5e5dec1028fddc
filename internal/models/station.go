// station.go
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

// ReportType is the reporting state shown for a station
type ReportType string

const (
	ReportDone      ReportType = "Done"
	ReportPending   ReportType = "Pending"
	ReportInProcess ReportType = "In process"
)

// Valid reports whether r is a known report type
func (r ReportType) Valid() bool {
	switch r {
	case ReportDone, ReportPending, ReportInProcess:
		return true
	}
	return false
}

// Station is a process step of a product
type Station struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       uint64     `gorm:"not null;index" json:"product_id"`
	ProductName     string     `gorm:"->;-:migration" json:"product_name"`
	StationNumber   int        `gorm:"not null;default:0" json:"station_number"`
	StationName     string     `gorm:"size:255;not null" json:"station_name"`
	CycleTime       float64    `gorm:"not null;default:0" json:"cycle_time"`
	DailyCount      int        `gorm:"not null;default:0" json:"daily_count"`
	ProductsPerHour float64    `gorm:"not null;default:0" json:"products_per_hour"`
	ReportType      ReportType `gorm:"size:16;not null" json:"report_type"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Product    *Product           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Parameters []StationParameter `gorm:"-" json:"parameters,omitempty"`
}

// StationParameter is a reusable measurement definition, independent of products
type StationParameter struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:1024" json:"description"`
	Unit        string `gorm:"size:64" json:"unit"`
}

// StationParameterAssignment joins stations and station parameters
type StationParameterAssignment struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	StationID   uint64    `gorm:"not null;uniqueIndex:idx_station_parameter" json:"station_id"`
	ParameterID uint64    `gorm:"not null;uniqueIndex:idx_station_parameter" json:"parameter_id"`
	CreatedAt   time.Time `json:"created_at"`

	Station   *Station          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Parameter *StationParameter `gorm:"foreignKey:ParameterID;constraint:OnDelete:CASCADE" json:"-"`
}

// Machine is equipment associated with a product
type Machine struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       uint64    `gorm:"not null;index:idx_machine_product_name" json:"product_id"`
	MachineName     string    `gorm:"size:255;not null;index:idx_machine_product_name" json:"machine"`
	CycleTime       float64   `gorm:"not null;default:0" json:"cycleTime"`
	DailyCount      int       `gorm:"not null;default:0" json:"dailyCount"`
	ProductsPerHour float64   `gorm:"not null;default:0" json:"perHour"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName overrides the table name for Station
func (Station) TableName() string {
	return "stations"
}

// TableName overrides the table name for StationParameter
func (StationParameter) TableName() string {
	return "station_parameters"
}

// TableName overrides the table name for StationParameterAssignment
func (StationParameterAssignment) TableName() string {
	return "station_parameter_assignments"
}

// TableName overrides the table name for Machine
func (Machine) TableName() string {
	return "machines"
}
