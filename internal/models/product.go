// product.go
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

	"github.com/shopspring/decimal"
)

// ParameterStatus is the lifecycle state of a parameter definition
type ParameterStatus string

const (
	ParameterActive   ParameterStatus = "Active"
	ParameterInactive ParameterStatus = "Inactive"
	ParameterPending  ParameterStatus = "Pending"
)

// Valid reports whether s is a known status
func (s ParameterStatus) Valid() bool {
	switch s {
	case ParameterActive, ParameterInactive, ParameterPending:
		return true
	}
	return false
}

// Product is a manufactured item definition
type Product struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Parameters      []Parameter      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ParameterValues []ParameterValue `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Machines        []Machine        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Parameter is a measurable attribute definition owned by one product.
// The set for a product is only ever replaced as a whole.
type Parameter struct {
	ID            uint64              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint64              `gorm:"not null;index" json:"product_id"`
	ParameterName string              `gorm:"size:255;not null" json:"parameterName"`
	MaxValue      decimal.NullDecimal `gorm:"type:decimal(18,6)" json:"max_value"`
	MinValue      decimal.NullDecimal `gorm:"type:decimal(18,6)" json:"min_value"`
	Unit          string              `gorm:"size:64" json:"unit"`
	Evaluation    string              `gorm:"size:255" json:"evaluation"`
	SampleSize    *int                `json:"sample_size"`
	Compulsory    bool                `gorm:"not null" json:"compulsory"`
	Status        ParameterStatus     `gorm:"size:16;not null" json:"status"`
}

// ParameterValue is one recorded measurement in a named record of a product.
// ParameterName is deliberately not a foreign key to Parameter.
type ParameterValue struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint64    `gorm:"not null;uniqueIndex:idx_parameter_value_cell" json:"product_id"`
	RecordName    string    `gorm:"size:255;not null;uniqueIndex:idx_parameter_value_cell" json:"record_name"`
	ParameterName string    `gorm:"size:255;not null;uniqueIndex:idx_parameter_value_cell" json:"parameter_name"`
	Value         string    `gorm:"type:text;not null" json:"value"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}

// TableName overrides the table name for Parameter
func (Parameter) TableName() string {
	return "parameters"
}

// TableName overrides the table name for ParameterValue
func (ParameterValue) TableName() string {
	return "parameter_values"
}
