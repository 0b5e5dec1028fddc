// machine_store.go
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

// MachineInput accepts the field spellings used by the machine editor and older clients
type MachineInput struct {
	Machine         string            `json:"machine"`
	MachineName     string            `json:"machineName"`
	CycleTime       types.FlexFloat64 `json:"cycleTime"`
	CycleTimeAlt    types.FlexFloat64 `json:"cycle_time"`
	DailyCount      types.FlexFloat64 `json:"dailyCount"`
	DailyCountAlt   types.FlexFloat64 `json:"daily_count"`
	PerHour         types.FlexFloat64 `json:"perHour"`
	ProductsPerHour types.FlexFloat64 `json:"productsPerHour"`
	PerHourAlt      types.FlexFloat64 `json:"products_per_hour"`
}

// Name returns the first non-empty name spelling
func (m MachineInput) Name() string {
	if name := strings.TrimSpace(m.Machine); name != "" {
		return name
	}
	return strings.TrimSpace(m.MachineName)
}

func (m MachineInput) toModel(productID uint64) models.Machine {
	return models.Machine{
		ProductID:       productID,
		MachineName:     m.Name(),
		CycleTime:       firstSet(m.CycleTime, m.CycleTimeAlt),
		DailyCount:      int(firstSet(m.DailyCount, m.DailyCountAlt)),
		ProductsPerHour: firstSet(m.PerHour, m.ProductsPerHour, m.PerHourAlt),
	}
}

// AddMachinesInput is the add machines payload
type AddMachinesInput struct {
	ProductID   types.FlexUint64 `json:"product_id"`
	ProductName string           `json:"product_name"`
	Machines    []MachineInput   `json:"machines"`
}

// DeleteMachineInput is the delete machine payload
type DeleteMachineInput struct {
	ProductID   types.FlexUint64 `json:"product_id"`
	ProductName string           `json:"product_name"`
	MachineName string           `json:"machine_name"`
}

// AddMachines resolves the product by id or name and inserts every machine in one transaction
func (s *StationStore) AddMachines(ctx context.Context, productRef string, machines []MachineInput) (int, error) {
	const op = "addMachines"

	if productRef == "" {
		return 0, types.Validation(op, "product_id or product_name is required")
	}
	if len(machines) == 0 {
		return 0, types.Validation(op, "machines are required")
	}
	for i, m := range machines {
		if m.Name() == "" {
			return 0, types.Validation(op, "machine %d: a name is required", i+1)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := resolveProduct(tx, op, productRef)
		if err != nil {
			return err
		}

		rows := make([]models.Machine, len(machines))
		for i, m := range machines {
			rows[i] = m.toModel(product.ID)
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, database.Classify(op, err)
	}

	return len(machines), nil
}

// DeleteMachine deletes the product's machines with the given name and returns the count
func (s *StationStore) DeleteMachine(ctx context.Context, productRef, machineName string) (int64, error) {
	const op = "deleteMachine"

	machineName = strings.TrimSpace(machineName)
	if productRef == "" || machineName == "" {
		return 0, types.Validation(op, "product_id/product_name and machine_name are required")
	}

	db := s.db.WithContext(ctx)
	product, err := resolveProduct(db, op, productRef)
	if err != nil {
		return 0, err
	}

	result := db.Where("product_id = ? AND machine_name = ?", product.ID, machineName).Delete(&models.Machine{})
	if result.Error != nil {
		return 0, database.Classify(op, result.Error)
	}
	return result.RowsAffected, nil
}

// ListMachinesByProduct returns a product's machines ordered by id
func (s *StationStore) ListMachinesByProduct(ctx context.Context, productName string) ([]models.Machine, error) {
	const op = "listMachinesByProduct"

	db := s.db.WithContext(ctx)
	product, err := productByName(db, op, productName)
	if err != nil {
		return nil, err
	}

	var machines []models.Machine
	if err := db.Where("product_id = ?", product.ID).Order("id").Find(&machines).Error; err != nil {
		return nil, database.Classify(op, err)
	}
	return nonNil(machines), nil
}

// firstSet returns the first value that was present in the payload, else 0
func firstSet(values ...types.FlexFloat64) float64 {
	for _, v := range values {
		if v.Set {
			return v.Value
		}
	}
	return 0
}
